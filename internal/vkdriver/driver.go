// SPDX-License-Identifier: MPL-2.0

package vkdriver

import (
	"fmt"

	vulkan "github.com/goki/vulkan"

	"github.com/evandropoa/magnum/pkg/vk"
)

// Driver talks to the native Vulkan loader. Create one with New; the zero
// value is not usable.
//
// Native instance handles are kept private and exposed as opaque sequential
// vk.InstanceHandle values, so no unsafe pointer round-trips leak into the
// public API.
type Driver struct {
	handles    map[vk.InstanceHandle]vulkan.Instance
	nextHandle vk.InstanceHandle
}

var _ vk.Driver = (*Driver)(nil)

// New loads the Vulkan shared library and resolves the global entrypoints.
func New() (*Driver, error) {
	if err := vulkan.SetDefaultGetInstanceProcAddr(); err != nil {
		return nil, fmt.Errorf("failed to load Vulkan loader: %w", err)
	}
	if err := vulkan.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize Vulkan: %w", err)
	}
	return &Driver{handles: make(map[vk.InstanceHandle]vulkan.Instance)}, nil
}

// EnumerateInstanceVersion implements vk.Driver. Loaders predating Vulkan
// 1.1 lack the entrypoint; those report Vk10 with success, matching the
// contract.
func (d *Driver) EnumerateInstanceVersion() (vk.Version, vk.Result) {
	var version uint32
	if ret := vulkan.EnumerateInstanceVersion(&version); ret != vulkan.Success {
		return vk.Vk10, vk.Success
	}
	return vk.Version(version), vk.Success
}

// EnumerateInstanceLayerProperties implements vk.Driver.
func (d *Driver) EnumerateInstanceLayerProperties(count *uint32, properties []vk.LayerProperties) vk.Result {
	if properties == nil {
		return vk.Result(vulkan.EnumerateInstanceLayerProperties(count, nil))
	}

	native := make([]vulkan.LayerProperties, len(properties))
	ret := vulkan.EnumerateInstanceLayerProperties(count, native)
	for i := uint32(0); i < *count && int(i) < len(properties); i++ {
		p := &native[i]
		p.Deref()
		properties[i] = vk.LayerProperties{
			LayerName:             vulkan.ToString(p.LayerName[:]),
			SpecVersion:           vk.Version(p.SpecVersion),
			ImplementationVersion: p.ImplementationVersion,
			Description:           vulkan.ToString(p.Description[:]),
		}
	}
	return vk.Result(ret)
}

// EnumerateInstanceExtensionProperties implements vk.Driver.
func (d *Driver) EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []vk.ExtensionProperties) vk.Result {
	name := ""
	if layerName != "" {
		name = safeString(layerName)
	}

	if properties == nil {
		return vk.Result(vulkan.EnumerateInstanceExtensionProperties(name, count, nil))
	}

	native := make([]vulkan.ExtensionProperties, len(properties))
	ret := vulkan.EnumerateInstanceExtensionProperties(name, count, native)
	for i := uint32(0); i < *count && int(i) < len(properties); i++ {
		p := &native[i]
		p.Deref()
		properties[i] = vk.ExtensionProperties{
			ExtensionName: vulkan.ToString(p.ExtensionName[:]),
			SpecVersion:   p.SpecVersion,
		}
	}
	return vk.Result(ret)
}

// CreateInstance implements vk.Driver.
func (d *Driver) CreateInstance(info *vk.InstanceCreateData) (vk.InstanceHandle, vk.Result) {
	appInfo := &vulkan.ApplicationInfo{
		SType:              vulkan.StructureTypeApplicationInfo,
		ApplicationVersion: uint32(info.ApplicationVersion),
		PEngineName:        safeString(info.EngineName),
		ApiVersion:         vulkan.ApiVersion10,
	}
	if info.ApplicationName != "" {
		appInfo.PApplicationName = safeString(info.ApplicationName)
	}

	createInfo := &vulkan.InstanceCreateInfo{
		SType:                   vulkan.StructureTypeInstanceCreateInfo,
		Flags:                   vulkan.InstanceCreateFlags(info.Flags),
		PApplicationInfo:        appInfo,
		EnabledLayerCount:       uint32(len(info.EnabledLayers)),
		PpEnabledLayerNames:     safeStrings(info.EnabledLayers),
		EnabledExtensionCount:   uint32(len(info.EnabledExtensions)),
		PpEnabledExtensionNames: safeStrings(info.EnabledExtensions),
	}

	var instance vulkan.Instance
	if ret := vulkan.CreateInstance(createInfo, nil, &instance); ret != vulkan.Success {
		return 0, vk.Result(ret)
	}
	if err := vulkan.InitInstance(instance); err != nil {
		vulkan.DestroyInstance(instance, nil)
		return 0, vk.Result(vulkan.ErrorInitializationFailed)
	}

	d.nextHandle++
	d.handles[d.nextHandle] = instance
	return d.nextHandle, vk.Success
}

// DestroyInstance implements vk.Driver.
func (d *Driver) DestroyInstance(handle vk.InstanceHandle) {
	instance, ok := d.handles[handle]
	if !ok {
		return
	}
	vulkan.DestroyInstance(instance, nil)
	delete(d.handles, handle)
}

// GetInstanceProcAddr implements vk.Driver.
func (d *Driver) GetInstanceProcAddr(handle vk.InstanceHandle, name string) vk.ProcAddr {
	instance, ok := d.handles[handle]
	if !ok {
		return 0
	}
	return vk.ProcAddr(uintptr(vulkan.GetInstanceProcAddr(instance, safeString(name))))
}

// safeString null-terminates s the way the binding requires.
func safeString(s string) string {
	if len(s) != 0 && s[len(s)-1] == '\x00' {
		return s
	}
	return s + "\x00"
}

func safeStrings(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = safeString(name)
	}
	return out
}
