// SPDX-License-Identifier: MPL-2.0

package vk

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the sentinel error wrapped by IndexOutOfRangeError.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInstanceCreation is the sentinel error wrapped by InstanceCreationError.
var ErrInstanceCreation = errors.New("instance creation failed")

type (
	// IndexOutOfRangeError is returned by indexed catalog accessors when the
	// requested index is not smaller than the entry count. It is a reported,
	// recoverable condition: the accessor additionally returns a zero value
	// and the caller decides whether to abort.
	IndexOutOfRangeError struct {
		// Component is the catalog type name, e.g. "InstanceProperties".
		Component string
		// Method is the accessor name in its canonical spelling, e.g. "layer".
		Method string
		// Index is the requested index.
		Index uint32
		// Count is the current entry count.
		Count uint32
	}

	// InstanceCreationError is returned by CreateInstance when the driver
	// rejects the creation request.
	InstanceCreationError struct {
		Result Result
	}
)

// Error formats the diagnostic in the exact shape existing tooling expects:
//
//	Vk::<Component>::<method>(): index <i> out of range for <n> entries
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Vk::%s::%s(): index %d out of range for %d entries",
		e.Component, e.Method, e.Index, e.Count)
}

// Unwrap returns ErrIndexOutOfRange so callers can use errors.Is.
func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// Error implements the error interface.
func (e *InstanceCreationError) Error() string {
	return fmt.Sprintf("creating Vulkan instance: driver returned %s", e.Result)
}

// Unwrap returns ErrInstanceCreation so callers can use errors.Is.
func (e *InstanceCreationError) Unwrap() error { return ErrInstanceCreation }
