package alloc

import (
	"fmt"
	"unsafe"

	"github.com/lumen-cv/lumen/internal/types"
)

// HostAllocator allocates page-able host memory with explicit base alignment.
// It over-allocates by the alignment and offsets the base pointer, keeping
// the original slice referenced in the Buffer so the memory stays live.
//
// HostAllocator is safe for concurrent use: it holds no state of its own.
type HostAllocator struct{}

// NewHostAllocator returns the default host allocator.
func NewHostAllocator() *HostAllocator {
	return &HostAllocator{}
}

// Allocate returns a zero-filled host buffer of at least size bytes aligned
// to align.
func (a *HostAllocator) Allocate(size, align int64) (Buffer, error) {
	if size <= 0 {
		return Buffer{}, fmt.Errorf("%w: allocation size %d must be > 0", types.ErrInvalidArgument, size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return Buffer{}, fmt.Errorf("%w: alignment %d is not a power of two", types.ErrInvalidArgument, align)
	}

	backing := make([]byte, size+align)
	base := uintptr(unsafe.Pointer(&backing[0]))
	offset := int64(0)
	if rem := int64(base) & (align - 1); rem != 0 {
		offset = align - rem
	}

	return Buffer{
		Ptr:     unsafe.Pointer(&backing[offset]),
		Size:    size,
		Align:   align,
		Kind:    HostMem,
		backing: backing,
	}, nil
}

// Deallocate drops the buffer's backing reference. The collector reclaims the
// memory once no other reference remains.
func (a *HostAllocator) Deallocate(_ Buffer) {}

// Kind returns HostMem.
func (a *HostAllocator) Kind() MemKind {
	return HostMem
}
