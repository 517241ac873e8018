// SPDX-License-Identifier: MPL-2.0

package vk

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Overrides is the externally parsed enable/disable surface consumed once at
// InstanceCreateInfo construction. See internal/config for the production
// source (command-line flags, environment, config file).
type Overrides struct {
	// EnabledLayers and EnabledExtensions are added to the request up front,
	// subject to the same disable filtering as later additions.
	EnabledLayers     []string
	EnabledExtensions []string

	// DisabledLayers and DisabledExtensions are filtered out of every
	// addition, silently: overrides win over application requests, and a
	// dropped candidate is policy, not failure.
	DisabledLayers     []string
	DisabledExtensions []string

	// VerboseLog makes instance creation list the final selected layers and
	// extensions. Purely observational.
	VerboseLog bool
}

// InstanceCreateInfo accumulates an instance creation request: selected
// layers and extensions in request order, application metadata, all filtered
// against the disable lists of the Overrides it was constructed with.
//
// The builder is consumed exactly once by CreateInstance; mutating it
// afterwards is a programmer error and panics.
type InstanceCreateInfo struct {
	data InstanceCreateData

	// disabledLayers and disabledExtensions are sorted once at construction
	// so additions can binary search them.
	disabledLayers     []string
	disabledExtensions []string

	verbose  bool
	logger   *log.Logger
	consumed bool
}

// NewInstanceCreateInfo returns an empty request. A nil overrides means no
// filtering and no verbose listing.
func NewInstanceCreateInfo(overrides *Overrides) *InstanceCreateInfo {
	info := &InstanceCreateInfo{
		data: InstanceCreateData{EngineName: "Magnum"},
	}
	if overrides == nil {
		return info
	}

	info.verbose = overrides.VerboseLog
	info.disabledLayers = sortedCopy(overrides.DisabledLayers)
	info.disabledExtensions = sortedCopy(overrides.DisabledExtensions)

	info.AddEnabledLayers(overrides.EnabledLayers...)
	info.AddEnabledExtensions(overrides.EnabledExtensions...)
	return info
}

func sortedCopy(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

func contains(sorted []string, name string) bool {
	i := sort.SearchStrings(sorted, name)
	return i < len(sorted) && sorted[i] == name
}

func (i *InstanceCreateInfo) assertMutable(method string) {
	if i.consumed {
		panic(fmt.Sprintf("vk: InstanceCreateInfo.%s() called after the descriptor was consumed by instance creation", method))
	}
}

// consume transitions the builder to its final state. Called by
// CreateInstance.
func (i *InstanceCreateInfo) consume() {
	i.assertMutable("consume")
	i.consumed = true
}

// SetLogger routes the verbose creation listing through the given logger
// instead of the default one.
func (i *InstanceCreateInfo) SetLogger(logger *log.Logger) *InstanceCreateInfo {
	i.logger = logger
	return i
}

// SetApplicationInfo sets the application name and version handed to the
// driver. An empty name clears any previously stored name, i.e. the driver
// sees "absent" rather than an empty string.
func (i *InstanceCreateInfo) SetApplicationInfo(name string, version Version) *InstanceCreateInfo {
	i.assertMutable("SetApplicationInfo")
	i.data.ApplicationName = name
	i.data.ApplicationVersion = version
	return i
}

// AddEnabledLayers appends the given layers to the request, in order,
// silently dropping any that appear in the disabled-layers override.
// Duplicates are kept; the request list is not a set.
func (i *InstanceCreateInfo) AddEnabledLayers(layers ...string) *InstanceCreateInfo {
	i.assertMutable("AddEnabledLayers")
	for _, layer := range layers {
		if contains(i.disabledLayers, layer) {
			continue
		}
		i.data.EnabledLayers = append(i.data.EnabledLayers, layer)
	}
	return i
}

// AddEnabledExtensions appends the given extensions to the request, in
// order, silently dropping any that appear in the disabled-extensions
// override.
func (i *InstanceCreateInfo) AddEnabledExtensions(extensions ...string) *InstanceCreateInfo {
	i.assertMutable("AddEnabledExtensions")
	for _, extension := range extensions {
		if contains(i.disabledExtensions, extension) {
			continue
		}
		i.data.EnabledExtensions = append(i.data.EnabledExtensions, extension)
	}
	return i
}

// AddEnabledInstanceExtensions is AddEnabledExtensions for known extensions
// from the registry, saving the caller a name conversion.
func (i *InstanceCreateInfo) AddEnabledInstanceExtensions(extensions ...InstanceExtension) *InstanceCreateInfo {
	i.assertMutable("AddEnabledInstanceExtensions")
	for _, extension := range extensions {
		if contains(i.disabledExtensions, extension.name) {
			continue
		}
		i.data.EnabledExtensions = append(i.data.EnabledExtensions, extension.name)
	}
	return i
}

// ApplicationName returns the currently stored application name, empty if
// absent.
func (i *InstanceCreateInfo) ApplicationName() string { return i.data.ApplicationName }

// ApplicationVersion returns the currently stored application version.
func (i *InstanceCreateInfo) ApplicationVersion() Version { return i.data.ApplicationVersion }

// EnabledLayers returns the filtered layer request list in request order.
// Callers must not modify the returned slice.
func (i *InstanceCreateInfo) EnabledLayers() []string { return i.data.EnabledLayers }

// EnabledExtensions returns the filtered extension request list in request
// order. Callers must not modify the returned slice.
func (i *InstanceCreateInfo) EnabledExtensions() []string { return i.data.EnabledExtensions }

// logSelection lists the final selection. Called by CreateInstance when the
// verbose override is set, before the driver call.
func (i *InstanceCreateInfo) logSelection() {
	logger := i.logger
	if logger == nil {
		logger = log.Default()
	}
	if len(i.data.EnabledLayers) != 0 {
		logger.Info("Enabled instance layers:")
		for _, layer := range i.data.EnabledLayers {
			logger.Info("    " + layer)
		}
	}
	if len(i.data.EnabledExtensions) != 0 {
		logger.Info("Enabled instance extensions:")
		for _, extension := range i.data.EnabledExtensions {
			logger.Info("    " + extension)
		}
	}
}
