// SPDX-License-Identifier: MPL-2.0

package vk

// HandleFlags control ownership of a wrapped native handle.
type HandleFlags uint8

const (
	// HandleFlagDestroyOnDestruction makes Instance.Destroy destroy the
	// underlying native handle. Without it the handle is intentionally
	// leaked and the caller retains ownership.
	HandleFlagDestroyOnDestruction HandleFlags = 1 << 0
)

// InstanceTable is the instance-level dispatch table, populated via
// GetInstanceProcAddr when an instance is created or wrapped. It replaces
// the usual process-wide function pointer globals with an explicit object;
// see PopulateGlobalFunctionPointers for interop with callers that expect a
// global.
type InstanceTable struct {
	DestroyInstance          ProcAddr
	EnumeratePhysicalDevices ProcAddr
	GetDeviceProcAddr        ProcAddr
	CreateDevice             ProcAddr
}

// extensionSet records which known instance extensions are enabled, one bit
// per stable extension ID.
type extensionSet [(InstanceExtensionCount + 63) / 64]uint64

func (s *extensionSet) set(index int)      { s[index/64] |= 1 << (index % 64) }
func (s *extensionSet) has(index int) bool { return s[index/64]&(1<<(index%64)) != 0 }

// Instance owns a created (or adopted) native instance handle together with
// the record of which known extensions are active on it. The handle and its
// destruction responsibility have exactly one owner at a time: hand an
// Instance around by pointer, use Release to transfer the raw handle out.
type Instance struct {
	driver Driver
	handle InstanceHandle
	flags  HandleFlags
	table  InstanceTable

	enabled extensionSet
}

// CreateInstance consumes the given descriptor and asks the driver for an
// instance. The descriptor must not be mutated afterwards. On failure an
// InstanceCreationError wrapping ErrInstanceCreation is returned.
//
// The created instance destroys the native handle on Destroy.
func CreateInstance(driver Driver, info *InstanceCreateInfo) (*Instance, error) {
	info.consume()

	if info.verbose {
		info.logSelection()
	}

	handle, result := driver.CreateInstance(&info.data)
	if result != Success {
		return nil, &InstanceCreationError{Result: result}
	}

	instance := &Instance{
		driver: driver,
		handle: handle,
		flags:  HandleFlagDestroyOnDestruction,
	}
	instance.initialize(info.data.EnabledExtensions)
	return instance, nil
}

// WrapInstance adopts a native handle that was not created through
// CreateInstance. The given extension names are assumed to be active and
// pre-seed the enabled set without any verification against the driver.
// Pass HandleFlagDestroyOnDestruction if destruction should also destroy the
// native handle.
func WrapInstance(driver Driver, handle InstanceHandle, enabledExtensions []string, flags HandleFlags) *Instance {
	instance := &Instance{
		driver: driver,
		handle: handle,
		flags:  flags,
	}
	instance.initialize(enabledExtensions)
	return instance
}

// initialize populates the dispatch table and marks all known extensions
// from the accepted list as enabled. Names the registry doesn't know leave
// no bit set, so IsExtensionEnabled reports false for them; that is
// expected, not a bug.
func (i *Instance) initialize(enabledExtensions []string) {
	i.table = InstanceTable{
		DestroyInstance:          i.driver.GetInstanceProcAddr(i.handle, "vkDestroyInstance"),
		EnumeratePhysicalDevices: i.driver.GetInstanceProcAddr(i.handle, "vkEnumeratePhysicalDevices"),
		GetDeviceProcAddr:        i.driver.GetInstanceProcAddr(i.handle, "vkGetDeviceProcAddr"),
		CreateDevice:             i.driver.GetInstanceProcAddr(i.handle, "vkCreateDevice"),
	}

	for _, name := range enabledExtensions {
		if extension, ok := findInstanceExtension(name); ok {
			i.enabled.set(extension.index)
		}
	}
}

// Handle returns the native handle, 0 if the instance was released or
// destroyed.
func (i *Instance) Handle() InstanceHandle { return i.handle }

// Table returns the instance-level dispatch table.
func (i *Instance) Table() InstanceTable { return i.table }

// IsExtensionEnabled reports whether the given known extension was enabled
// when the instance was created or wrapped. O(1) bit test against the
// stable extension ID.
func (i *Instance) IsExtensionEnabled(extension InstanceExtension) bool {
	return i.enabled.has(extension.index)
}

// Release gives up ownership of the native handle and returns it. The
// instance is left equivalent to a not-yet-created one: null handle, empty
// dispatch table and enabled set, safe to Destroy.
func (i *Instance) Release() InstanceHandle {
	handle := i.handle
	i.handle = 0
	i.table = InstanceTable{}
	i.enabled = extensionSet{}
	return handle
}

// Destroy destroys the native handle if the instance owns one and carries
// HandleFlagDestroyOnDestruction; otherwise the handle is intentionally
// leaked. Safe to call on a released instance; the driver destroy
// entrypoint is invoked at most once.
func (i *Instance) Destroy() {
	if i.handle != 0 && i.flags&HandleFlagDestroyOnDestruction != 0 {
		i.driver.DestroyInstance(i.handle)
	}
	i.handle = 0
	i.table = InstanceTable{}
	i.enabled = extensionSet{}
}

// globalTable is the single piece of process-wide mutable state: a dispatch
// table for callers that expect global entrypoints.
var globalTable InstanceTable

// PopulateGlobalFunctionPointers publishes this instance's dispatch table as
// the process-wide one. Single-writer discipline applies: this must not be
// called from multiple goroutines concurrently, and the chosen instance must
// match what callers of GlobalFunctionPointers invoke against.
func (i *Instance) PopulateGlobalFunctionPointers() {
	globalTable = i.table
}

// GlobalFunctionPointers returns the process-wide dispatch table last
// published by PopulateGlobalFunctionPointers.
func GlobalFunctionPointers() InstanceTable {
	return globalTable
}
