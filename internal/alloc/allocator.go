// Package alloc defines the pluggable memory allocator abstraction used by
// owning entities, plus a host implementation with aligned allocation and a
// tracking decorator for leak accounting.
package alloc

import (
	"unsafe"
)

// MemKind classifies where a buffer's memory lives.
type MemKind int

// Supported memory kinds.
const (
	HostMem MemKind = iota
	HostPinnedMem
	DeviceMem
)

func (k MemKind) String() string {
	switch k {
	case HostMem:
		return "host"
	case HostPinnedMem:
		return "host-pinned"
	case DeviceMem:
		return "device"
	default:
		return "unknown"
	}
}

// Buffer is one allocation returned by an Allocator. The same value must be
// passed back to Deallocate, exactly once, by the entity that received it.
type Buffer struct {
	// Ptr is the aligned base address. Nil for device memory that has no
	// host-visible mapping.
	Ptr unsafe.Pointer
	// Size is the usable byte size, which may exceed what was requested.
	Size int64
	// Align is the base alignment the allocation satisfies.
	Align int64
	// Kind tells where the memory lives.
	Kind MemKind

	// backing pins the Go allocation for host buffers so the collector
	// cannot reclaim it while only Ptr references it.
	backing []byte
	// device holds the backend-specific handle for device buffers.
	device any
}

// Bytes returns the buffer as a byte slice for host-visible memory, or nil
// for device memory.
func (b Buffer) Bytes() []byte {
	if b.Ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.Ptr), b.Size)
}

// DeviceHandle returns the backend-specific handle for device buffers, nil
// otherwise.
func (b Buffer) DeviceHandle() any {
	return b.device
}

// NewDeviceBuffer builds a Buffer around a backend-specific device handle.
// Used by device allocator implementations.
func NewDeviceBuffer(handle any, size, align int64) Buffer {
	return Buffer{Size: size, Align: align, Kind: DeviceMem, device: handle}
}

// Allocator is the minimal capability set an external allocator must satisfy
// to back owning entities. Implementations declare their own thread-safety;
// the core adds no locking around allocator calls.
type Allocator interface {
	// Allocate returns a buffer of at least size bytes whose base address is
	// a multiple of align. align must be a power of two.
	Allocate(size, align int64) (Buffer, error)
	// Deallocate returns a buffer obtained from Allocate. Must be called
	// exactly once per successful Allocate.
	Deallocate(b Buffer)
	// Kind reports the memory kind this allocator produces.
	Kind() MemKind
}
