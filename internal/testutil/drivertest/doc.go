// SPDX-License-Identifier: MPL-2.0

// Package drivertest provides an in-memory vk.Driver with scripted layer and
// extension sets and per-entrypoint call counters, so tests can assert lazy
// population, query idempotence and creation behavior without a Vulkan
// runtime.
package drivertest
