package core

import (
	"unsafe"

	"github.com/lumen-cv/lumen/internal/alloc"
	"github.com/lumen-cv/lumen/internal/types"
)

// TensorData is the strided descriptor of a tensor's memory: shape, element
// type, memory kind, base pointer and byte strides. It is a plain value;
// copying it snapshots the descriptor, which is what wrap-time cleanup
// callbacks receive.
type TensorData struct {
	Shape   types.TensorShape
	DType   types.DataType
	Kind    alloc.MemKind
	Ptr     unsafe.Pointer
	Device  any // backend-specific handle for device memory, nil otherwise
	Strides [types.MaxRank]int64
}

// Stride returns the byte stride of axis i.
func (d TensorData) Stride(i int) int64 {
	return d.Strides[i]
}

// NumBytes returns the total byte footprint implied by the descriptor.
func (d TensorData) NumBytes() int64 {
	if d.Shape.Rank() == 0 {
		return 0
	}
	return d.Strides[0] * d.Shape.Extent(0)
}

// Bytes returns the described memory as a byte slice for host-visible
// descriptors, nil for device memory.
func (d TensorData) Bytes() []byte {
	if d.Ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(d.Ptr), d.NumBytes())
}

// ImagePlaneData describes one plane of an image's memory.
type ImagePlaneData struct {
	// Ptr is the plane base address for host-visible memory, nil for
	// device memory.
	Ptr unsafe.Pointer
	// Offset is the plane's byte offset from the allocation base.
	Offset int64
	// RowStride is the byte distance between consecutive rows.
	RowStride int64
}

// ImageData is the strided descriptor of an image's memory.
type ImageData struct {
	Format    types.ImageFormat
	Width     int64
	Height    int64
	Kind      alloc.MemKind
	Device    any // backend-specific handle for device memory, nil otherwise
	NumPlanes int32
	Planes    [types.MaxPlanes]ImagePlaneData
}

// Plane returns the descriptor of plane p.
func (d ImageData) Plane(p int) ImagePlaneData {
	return d.Planes[p]
}

// PlaneBytes returns plane p's memory as a byte slice for host-visible
// descriptors, nil for device memory.
func (d ImageData) PlaneBytes(p int) []byte {
	pl := d.Planes[p]
	if pl.Ptr == nil {
		return nil
	}
	h := d.Format.PlaneHeight(d.Height, p)
	return unsafe.Slice((*byte)(pl.Ptr), pl.RowStride*h)
}
