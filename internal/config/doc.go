// SPDX-License-Identifier: MPL-2.0

// Package config assembles the capability override surface consumed by
// vk.NewInstanceCreateInfo. Overrides come, in increasing precedence, from
// an optional "magnum" config file, MAGNUM_* environment variables and
// command-line flags.
package config
