// SPDX-License-Identifier: MPL-2.0

// Package vk is a thin typed wrapper around Vulkan instance-level capability
// discovery and instance creation. It answers three questions, in order:
//
//   - what capabilities exist: InstanceProperties lists the layers the driver
//     reports and InstanceExtensionProperties merges the extensions visible in
//     the global scope plus any selected layer scopes into one sorted,
//     deduplicated index;
//   - what do we want: InstanceCreateInfo accumulates the layers, extensions
//     and application metadata to request, filtered against externally
//     supplied disable lists;
//   - what is actually active: Instance records, as a bitset indexed by the
//     stable IDs of the known-extension registry, which extensions ended up
//     enabled, turning the O(log n) pre-creation support check into an O(1)
//     bit test.
//
// All driver access goes through the Driver interface; the production
// implementation lives in internal/vkdriver.
//
// The package is single-threaded by contract. Lazily populated catalogs
// mutate private cached state on first access without locking; callers that
// need concurrent access must use independent catalog instances or serialize
// externally.
package vk
