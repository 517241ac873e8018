// SPDX-License-Identifier: MPL-2.0

package drivertest

import (
	"github.com/evandropoa/magnum/pkg/vk"
)

// Driver is a scripted in-memory vk.Driver. The zero value reports Vulkan
// 1.2, no layers and no extensions; populate the fields before handing it to
// the code under test.
type Driver struct {
	// Version is reported by EnumerateInstanceVersion; zero defaults to
	// Vk12.
	Version vk.Version

	// Layers are reported in this exact order (driver order, deliberately
	// not required to be sorted).
	Layers []vk.LayerProperties

	// GlobalExtensions is scope 0; LayerExtensions maps a layer name to its
	// scope. A layer listed in Layers but absent here simply has no
	// extensions of its own.
	GlobalExtensions []vk.ExtensionProperties
	LayerExtensions  map[string][]vk.ExtensionProperties

	// CreateResult, when non-zero, is returned by CreateInstance instead of
	// success.
	CreateResult vk.Result

	// Calls counts invocations per entrypoint name, including the count
	// pass of two-call enumerations.
	Calls map[string]int

	// Created and Destroyed record handles in order of the respective
	// driver calls. LastCreateData is the argument of the most recent
	// CreateInstance.
	Created        []vk.InstanceHandle
	Destroyed      []vk.InstanceHandle
	LastCreateData *vk.InstanceCreateData

	nextHandle vk.InstanceHandle
}

var _ vk.Driver = (*Driver)(nil)

// New returns an empty scripted driver.
func New() *Driver {
	return &Driver{}
}

func (d *Driver) count(name string) {
	if d.Calls == nil {
		d.Calls = make(map[string]int)
	}
	d.Calls[name]++
}

// EnumerateInstanceVersion implements vk.Driver.
func (d *Driver) EnumerateInstanceVersion() (vk.Version, vk.Result) {
	d.count("vkEnumerateInstanceVersion")
	if d.Version == 0 {
		return vk.Vk12, vk.Success
	}
	return d.Version, vk.Success
}

// EnumerateInstanceLayerProperties implements vk.Driver.
func (d *Driver) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	d.count("vkEnumerateInstanceLayerProperties")
	if properties == nil {
		*count = uint32(len(d.Layers))
		return vk.Success
	}
	n := copy(properties, d.Layers)
	*count = uint32(n)
	if n < len(d.Layers) {
		return vk.Incomplete
	}
	return vk.Success
}

// EnumerateInstanceExtensionProperties implements vk.Driver.
func (d *Driver) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	d.count("vkEnumerateInstanceExtensionProperties")

	scope := d.GlobalExtensions
	if layerName != "" {
		if !d.hasLayer(layerName) {
			return vk.ErrorLayerNotPresent
		}
		scope = d.LayerExtensions[layerName]
	}

	if properties == nil {
		*count = uint32(len(scope))
		return vk.Success
	}
	n := copy(properties, scope)
	*count = uint32(n)
	if n < len(scope) {
		return vk.Incomplete
	}
	return vk.Success
}

func (d *Driver) hasLayer(name string) bool {
	for _, layer := range d.Layers {
		if layer.LayerName == name {
			return true
		}
	}
	return false
}

// CreateInstance implements vk.Driver. Handles are assigned sequentially
// starting at 1.
func (d *Driver) CreateInstance(info *vk.InstanceCreateData) (vk.InstanceHandle, vk.Result) {
	d.count("vkCreateInstance")
	d.LastCreateData = info
	if d.CreateResult != vk.Success {
		return 0, d.CreateResult
	}
	d.nextHandle++
	d.Created = append(d.Created, d.nextHandle)
	return d.nextHandle, vk.Success
}

// DestroyInstance implements vk.Driver.
func (d *Driver) DestroyInstance(handle vk.InstanceHandle) {
	d.count("vkDestroyInstance")
	d.Destroyed = append(d.Destroyed, handle)
}

// GetInstanceProcAddr implements vk.Driver. It hands out distinct non-zero
// addresses for any name as long as the handle is non-null, mirroring a
// loader that resolves everything.
func (d *Driver) GetInstanceProcAddr(handle vk.InstanceHandle, name string) vk.ProcAddr {
	d.count("vkGetInstanceProcAddr")
	if handle == 0 {
		return 0
	}
	addr := vk.ProcAddr(1)
	for _, c := range name {
		addr = addr*31 + vk.ProcAddr(c)
	}
	if addr == 0 {
		addr = 1
	}
	return addr
}
