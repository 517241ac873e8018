// SPDX-License-Identifier: MPL-2.0

package vk

type (
	// InstanceHandle is an opaque native instance handle. The zero value is
	// the null handle.
	InstanceHandle uintptr

	// ProcAddr is an opaque instance entrypoint address as returned by
	// Driver.GetInstanceProcAddr. The zero value means the entrypoint is not
	// available.
	ProcAddr uintptr

	// InstanceCreateFlags are flags passed through to instance creation.
	InstanceCreateFlags uint32

	// LayerProperties describes one layer as reported by the driver.
	// Immutable once queried.
	LayerProperties struct {
		// LayerName is the layer name, e.g. "VK_LAYER_KHRONOS_validation".
		LayerName string
		// SpecVersion is the Vulkan version the layer is written against.
		SpecVersion Version
		// ImplementationVersion is the layer revision number.
		ImplementationVersion uint32
		// Description is a human-readable layer description.
		Description string
	}

	// ExtensionProperties describes one extension as reported by the driver
	// for a particular scope.
	ExtensionProperties struct {
		// ExtensionName is the extension name, e.g. "VK_EXT_debug_utils".
		ExtensionName string
		// SpecVersion is the extension revision number. Unlike
		// LayerProperties.SpecVersion this is not a Vulkan version.
		SpecVersion uint32
	}

	// InstanceCreateData is the final set of native instance creation
	// arguments assembled by InstanceCreateInfo.
	InstanceCreateData struct {
		// ApplicationName is the application name; empty means absent.
		ApplicationName string
		// ApplicationVersion is the application version.
		ApplicationVersion Version
		// EngineName is the engine name reported to the driver.
		EngineName string
		// EnabledLayers are the layer names to enable, in request order.
		EnabledLayers []string
		// EnabledExtensions are the extension names to enable, in request
		// order.
		EnabledExtensions []string
		// Flags are passed through unmodified.
		Flags InstanceCreateFlags
	}
)

// Driver is the set of global Vulkan entrypoints this package needs. All
// calls are synchronous round-trips that are assumed to complete promptly;
// none of them block in the async sense or accept cancellation.
//
// The enumerate calls follow the Vulkan two-call idiom: with a nil properties
// slice the driver stores the available count into count, otherwise it fills
// up to len(properties) entries and stores the number written.
type Driver interface {
	// EnumerateInstanceVersion reports the instance-level version. Drivers
	// predating the entrypoint report Vk10 with Success.
	EnumerateInstanceVersion() (Version, Result)

	// EnumerateInstanceLayerProperties lists the available layers.
	EnumerateInstanceLayerProperties(count *uint32, properties []LayerProperties) Result

	// EnumerateInstanceExtensionProperties lists the extensions visible in
	// one scope: the global scope when layerName is empty, otherwise the
	// scope of the named layer. An unknown layer name yields
	// ErrorLayerNotPresent.
	EnumerateInstanceExtensionProperties(layerName string, count *uint32, properties []ExtensionProperties) Result

	// CreateInstance creates a native instance from the assembled arguments.
	CreateInstance(info *InstanceCreateData) (InstanceHandle, Result)

	// DestroyInstance destroys a previously created instance.
	DestroyInstance(handle InstanceHandle)

	// GetInstanceProcAddr resolves an instance-level entrypoint, returning 0
	// if the entrypoint is unavailable.
	GetInstanceProcAddr(handle InstanceHandle, name string) ProcAddr
}
