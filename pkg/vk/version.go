// SPDX-License-Identifier: MPL-2.0

package vk

import "fmt"

// Version is a Vulkan version number in the packed representation used by the
// driver: ten bits for the major version, ten for the minor and twelve for
// the patch. The zero value means "unknown / not yet queried".
type Version uint32

const (
	// Vk10 is Vulkan 1.0.
	Vk10 Version = 1 << 22
	// Vk11 is Vulkan 1.1.
	Vk11 Version = 1<<22 | 1<<12
	// Vk12 is Vulkan 1.2.
	Vk12 Version = 1<<22 | 2<<12

	// VersionNone is an unspecified version. It compares greater than any
	// concrete version, which makes it usable both as "any future version"
	// and as "never promoted to core" in the extension registries.
	VersionNone Version = 0xffffffff
)

// MakeVersion packs a major, minor and patch version number. Values out of
// the representable ranges are truncated.
func MakeVersion(major, minor, patch int) Version {
	return Version(major)<<22 | Version(minor)<<12 | Version(patch)
}

// Major returns the major version number.
func (v Version) Major() int { return int(v >> 22) }

// Minor returns the minor version number.
func (v Version) Minor() int { return int(v>>12) & 0x3ff }

// Patch returns the patch version number.
func (v Version) Patch() int { return int(v) & 0xfff }

// String returns "Vulkan <major>.<minor>" with the patch appended when
// non-zero, or "Vulkan None" for VersionNone.
func (v Version) String() string {
	if v == VersionNone {
		return "Vulkan None"
	}
	if v.Patch() != 0 {
		return fmt.Sprintf("Vulkan %d.%d.%d", v.Major(), v.Minor(), v.Patch())
	}
	return fmt.Sprintf("Vulkan %d.%d", v.Major(), v.Minor())
}
