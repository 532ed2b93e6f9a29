// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package alloc provides the pluggable memory allocator interface used by
// the Lumen resource types.
//
// The built-in allocators cover host memory; device memory comes from the
// alloc/webgpu subpackage. Custom allocators implement the Allocator
// interface and can be passed to any resource constructor.
//
// Example:
//
//	a := alloc.NewTrackedAllocator(alloc.NewHostAllocator())
//	tensor, _ := core.NewTensorFromShape(shape, types.U8, types.MemAlignment{}, a)
//	...
//	tensor.Destroy()
//	live, _, _, _ := a.Stats() // 0: every Allocate was paired with a Deallocate
package alloc

import (
	"github.com/lumen-cv/lumen/internal/alloc"
)

// Type aliases for public API

// MemKind identifies where a buffer's memory lives.
type MemKind = alloc.MemKind

// Memory kinds.
const (
	HostMem       MemKind = alloc.HostMem
	HostPinnedMem MemKind = alloc.HostPinnedMem
	DeviceMem     MemKind = alloc.DeviceMem
)

// Buffer is a contiguous allocation with its size, alignment and memory
// kind. Buffers are created by an Allocator and must be returned to the
// same Allocator.
type Buffer = alloc.Buffer

// Allocator hands out and reclaims buffers of one memory kind.
type Allocator = alloc.Allocator

// HostAllocator allocates zero-initialized, aligned host memory.
type HostAllocator = alloc.HostAllocator

// TrackedAllocator decorates another allocator with live/peak accounting.
type TrackedAllocator = alloc.TrackedAllocator

// NewHostAllocator returns the default host memory allocator.
func NewHostAllocator() *HostAllocator {
	return alloc.NewHostAllocator()
}

// NewTrackedAllocator wraps an allocator with allocation accounting.
func NewTrackedAllocator(inner Allocator) *TrackedAllocator {
	return alloc.NewTrackedAllocator(inner)
}

// NewDeviceBuffer builds a Buffer around an opaque device handle. Intended
// for Allocator implementations backing device memory.
func NewDeviceBuffer(handle any, size, align int64) Buffer {
	return alloc.NewDeviceBuffer(handle, size, align)
}
