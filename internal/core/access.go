package core

import (
	"unsafe"
)

// TensorDataAccess is a non-owning derived read of a tensor descriptor.
// Every accessor value is computed once at construction; the view holds no
// ownership and must be recomputed if the underlying entity changes.
type TensorDataAccess struct {
	data         TensorData
	numSamples   int64
	sampleStride int64
}

// MakeTensorDataAccess derives a sample-oriented view from a descriptor.
// Returns ok=false when the descriptor is empty. Descriptors without an 'N'
// tag are treated as a single sample spanning the whole buffer.
func MakeTensorDataAccess(d TensorData) (TensorDataAccess, bool) {
	if d.Shape.Rank() == 0 {
		return TensorDataAccess{}, false
	}
	a := TensorDataAccess{data: d, numSamples: 1, sampleStride: d.NumBytes()}
	if n := d.Shape.Layout().Find('N'); n >= 0 {
		a.numSamples = d.Shape.Extent(n)
		a.sampleStride = d.Strides[n]
	}
	return a, true
}

// Data returns the underlying descriptor.
func (a TensorDataAccess) Data() TensorData { return a.data }

// NumSamples returns the number of samples (the 'N' extent, or 1).
func (a TensorDataAccess) NumSamples() int64 { return a.numSamples }

// SampleStride returns the byte distance between consecutive samples.
func (a TensorDataAccess) SampleStride() int64 { return a.sampleStride }

// BasePtr returns the descriptor's base address (nil for device memory).
func (a TensorDataAccess) BasePtr() unsafe.Pointer { return a.data.Ptr }

// SamplePtr returns the base address of sample i for host-visible memory.
func (a TensorDataAccess) SamplePtr(i int64) unsafe.Pointer {
	if a.data.Ptr == nil {
		return nil
	}
	return unsafe.Add(a.data.Ptr, uintptr(i*a.sampleStride))
}

// TensorImageAccess is a TensorDataAccess over a descriptor whose layout tags
// height and width, adding row/column/channel accessors.
type TensorImageAccess struct {
	TensorDataAccess
	numRows     int64
	numCols     int64
	numChannels int64
	rowStride   int64
}

// MakeTensorImageAccess derives an image-oriented view from a descriptor.
// Returns ok=false when the layout does not tag both 'H' and 'W'; callers
// probe for this rather than treating it as a failure.
func MakeTensorImageAccess(d TensorData) (TensorImageAccess, bool) {
	base, ok := MakeTensorDataAccess(d)
	if !ok {
		return TensorImageAccess{}, false
	}

	h := d.Shape.Layout().Find('H')
	w := d.Shape.Layout().Find('W')
	if h < 0 || w < 0 {
		return TensorImageAccess{}, false
	}

	a := TensorImageAccess{
		TensorDataAccess: base,
		numRows:          d.Shape.Extent(h),
		numCols:          d.Shape.Extent(w),
		numChannels:      int64(d.DType.Channels()),
		rowStride:        d.Strides[h],
	}
	if c := d.Shape.Layout().Find('C'); c >= 0 {
		a.numChannels = d.Shape.Extent(c)
	}
	return a, true
}

// NumRows returns the height extent.
func (a TensorImageAccess) NumRows() int64 { return a.numRows }

// NumCols returns the width extent.
func (a TensorImageAccess) NumCols() int64 { return a.numCols }

// NumChannels returns the channel extent ('C' axis, or the element's packed
// channel count).
func (a TensorImageAccess) NumChannels() int64 { return a.numChannels }

// RowStride returns the byte distance between consecutive rows.
func (a TensorImageAccess) RowStride() int64 { return a.rowStride }

// RowPtr returns the base address of row r within sample s for host-visible
// memory.
func (a TensorImageAccess) RowPtr(s, r int64) unsafe.Pointer {
	p := a.SamplePtr(s)
	if p == nil {
		return nil
	}
	return unsafe.Add(p, uintptr(r*a.rowStride))
}

// ImageDataAccess is a non-owning derived read of an image descriptor.
type ImageDataAccess struct {
	data ImageData
}

// MakeImageDataAccess derives a plane-oriented view from an image
// descriptor. Returns ok=false when the descriptor has no format.
func MakeImageDataAccess(d ImageData) (ImageDataAccess, bool) {
	if d.Format.IsZero() || d.NumPlanes == 0 {
		return ImageDataAccess{}, false
	}
	return ImageDataAccess{data: d}, true
}

// Data returns the underlying descriptor.
func (a ImageDataAccess) Data() ImageData { return a.data }

// PlaneCount returns the number of planes.
func (a ImageDataAccess) PlaneCount() int { return int(a.data.NumPlanes) }

// NumRows returns the full-resolution height.
func (a ImageDataAccess) NumRows() int64 { return a.data.Height }

// NumCols returns the full-resolution width.
func (a ImageDataAccess) NumCols() int64 { return a.data.Width }

// RowStride returns the row stride of plane p.
func (a ImageDataAccess) RowStride(p int) int64 { return a.data.Planes[p].RowStride }

// PlanePtr returns the base address of plane p (nil for device memory).
func (a ImageDataAccess) PlanePtr(p int) unsafe.Pointer { return a.data.Planes[p].Ptr }
