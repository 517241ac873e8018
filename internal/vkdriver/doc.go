// SPDX-License-Identifier: MPL-2.0

// Package vkdriver implements vk.Driver on top of the native Vulkan loader
// via github.com/goki/vulkan. It is a thin translation layer: the two-call
// enumeration idiom is forwarded as-is and native handles are mapped to
// opaque vk.InstanceHandle values.
package vkdriver
