// SPDX-License-Identifier: MPL-2.0

// vk-info displays information about Vulkan instance-level capabilities:
// the instance version, the available layers and a version-partitioned
// extension support table.
package main

func main() {
	Execute()
}
