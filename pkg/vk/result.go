// SPDX-License-Identifier: MPL-2.0

package vk

import "fmt"

// Result is a Vulkan result code as returned by driver entrypoints. Zero is
// success, positive values are non-error statuses, negative values are
// errors.
type Result int32

// The subset of result codes this package inspects or produces. Drivers may
// return codes outside this list; they format as "Result(<n>)".
const (
	Success    Result = 0
	Incomplete Result = 5

	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorIncompatibleDriver   Result = -9
)

// String returns the Vulkan enum name for known codes.
func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case Incomplete:
		return "VK_INCOMPLETE"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	}
	return fmt.Sprintf("Result(%d)", int32(r))
}

// assertResult panics when a driver query fails. Environment queries are not
// expected to fail in a correctly configured system, so a non-success code is
// a fatal internal error rather than a recoverable condition.
func assertResult(call string, r Result) {
	if r != Success {
		panic(fmt.Sprintf("vk: %s unexpectedly returned %s", call, r))
	}
}
