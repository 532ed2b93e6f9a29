package core

import (
	"fmt"

	"github.com/lumen-cv/lumen/internal/types"
)

// TensorRequirements is the precomputed, allocator-independent memory layout
// of a tensor. Field order and the fixed-size stride array are part of the
// stable binary contract and must not change across compatible versions.
type TensorRequirements struct {
	Shape      types.TensorShape
	DType      types.DataType
	BaseAlign  int64
	RowAlign   int64
	TotalBytes int64
	Rank       int32
	Strides    [types.MaxRank]int64 // byte strides, Strides[0..Rank-1]
}

// PlaneLayout is the byte layout of one image plane within an allocation.
type PlaneLayout struct {
	Offset    int64
	RowStride int64
	Width     int64
	Height    int64
}

// ImageRequirements is the precomputed memory layout of a single image.
// Planes are laid out consecutively, each starting at a base-aligned offset.
type ImageRequirements struct {
	Width      int64
	Height     int64
	Format     types.ImageFormat
	BaseAlign  int64
	RowAlign   int64
	TotalBytes int64
	NumPlanes  int32
	Planes     [types.MaxPlanes]PlaneLayout
}

// ImageBatchRequirements is the memory layout of N same-sized images stored
// as one contiguous strided region per plane. Single-plane formats reduce to
// the 4D tensor case {N, H, W, C}.
type ImageBatchRequirements struct {
	NumImages  int32
	Width      int64
	Height     int64
	Format     types.ImageFormat
	BaseAlign  int64
	RowAlign   int64
	TotalBytes int64
	NumPlanes  int32
	PlaneReqs  [types.MaxPlanes]TensorRequirements
	PlaneOffs  [types.MaxPlanes]int64
}

// rowAxis returns the axis whose stride is the row pitch: the axis tagged 'H'
// when the layout has one, otherwise the last-but-one axis. Rank-1 shapes
// have no row axis (-1).
//
// The last-but-one fallback for untagged layouts is a deliberate policy
// choice; callers that need a different row axis must tag the layout.
func rowAxis(shape types.TensorShape) int {
	if i := shape.Layout().Find('H'); i >= 0 {
		return i
	}
	return shape.Rank() - 2
}

// CalcTensorRequirements computes the byte layout of a tensor with the given
// shape, element type and alignment. It is pure and deterministic: identical
// inputs produce bit-identical results, and it never allocates entity memory.
func CalcTensorRequirements(shape types.TensorShape, dtype types.DataType, align types.MemAlignment) (TensorRequirements, error) {
	if shape.Rank() == 0 {
		return TensorRequirements{}, fmt.Errorf("%w: shape has rank 0", types.ErrInvalidArgument)
	}
	if dtype.IsZero() {
		return TensorRequirements{}, fmt.Errorf("%w: no data type given", types.ErrInvalidArgument)
	}

	reqs := TensorRequirements{
		Shape:     shape,
		DType:     dtype,
		BaseAlign: align.BaseAlign(),
		RowAlign:  align.RowAlign(),
		Rank:      int32(shape.Rank()),
	}

	rank := shape.Rank()
	row := rowAxis(shape)

	// Row-major packing: the innermost stride is the element size, every
	// outer stride is the product of the faster-varying extents. The row
	// axis stride is rounded up to the row alignment, and outer strides
	// build on the padded value.
	reqs.Strides[rank-1] = dtype.Size()
	for i := rank - 2; i >= 0; i-- {
		reqs.Strides[i] = reqs.Strides[i+1] * shape.Extent(i + 1)
		if i == row {
			reqs.Strides[i] = types.AlignUp(reqs.Strides[i], reqs.RowAlign)
		}
	}
	reqs.TotalBytes = reqs.Strides[0] * shape.Extent(0)

	return reqs, nil
}

// CalcImageRequirements computes the byte layout of a single image of the
// given size and format. Subsampled plane dimensions must divide evenly.
func CalcImageRequirements(width, height int64, format types.ImageFormat, align types.MemAlignment) (ImageRequirements, error) {
	if width <= 0 || height <= 0 {
		return ImageRequirements{}, fmt.Errorf("%w: image size %dx%d must be positive", types.ErrInvalidArgument, width, height)
	}
	if format.IsZero() {
		return ImageRequirements{}, fmt.Errorf("%w: no image format given", types.ErrInvalidArgument)
	}

	reqs := ImageRequirements{
		Width:     width,
		Height:    height,
		Format:    format,
		BaseAlign: align.BaseAlign(),
		RowAlign:  align.RowAlign(),
		NumPlanes: int32(format.NumPlanes()),
	}

	offset := int64(0)
	for p := 0; p < format.NumPlanes(); p++ {
		pw := format.PlaneWidth(width, p)
		ph := format.PlaneHeight(height, p)
		if pw<<format.PlaneSubsampX(p) != width || ph<<format.PlaneSubsampY(p) != height {
			return ImageRequirements{}, fmt.Errorf("%w: image size %dx%d is not divisible by plane %d subsampling",
				types.ErrInvalidArgument, width, height, p)
		}

		offset = types.AlignUp(offset, reqs.BaseAlign)
		rowStride := types.AlignUp(pw*format.PlaneDataType(p).Size(), reqs.RowAlign)

		reqs.Planes[p] = PlaneLayout{
			Offset:    offset,
			RowStride: rowStride,
			Width:     pw,
			Height:    ph,
		}
		offset += rowStride * ph
	}
	reqs.TotalBytes = offset

	return reqs, nil
}

// CalcImageBatchRequirements computes the layout of numImages images of
// width x height in the given format, stored as one contiguous strided
// region per plane. Each plane region is the 4D tensor {N, H, W, C} of that
// plane, laid out consecutively at base-aligned offsets.
func CalcImageBatchRequirements(numImages int32, width, height int64, format types.ImageFormat, align types.MemAlignment) (ImageBatchRequirements, error) {
	if numImages <= 0 {
		return ImageBatchRequirements{}, fmt.Errorf("%w: image count %d must be > 0", types.ErrInvalidArgument, numImages)
	}
	imgReqs, err := CalcImageRequirements(width, height, format, align)
	if err != nil {
		return ImageBatchRequirements{}, err
	}

	reqs := ImageBatchRequirements{
		NumImages: numImages,
		Width:     width,
		Height:    height,
		Format:    format,
		BaseAlign: imgReqs.BaseAlign,
		RowAlign:  imgReqs.RowAlign,
		NumPlanes: imgReqs.NumPlanes,
	}

	offset := int64(0)
	for p := 0; p < format.NumPlanes(); p++ {
		dt := format.PlaneDataType(p)
		base, err := types.MakeDataType(dt.Kind(), dt.Bits(), 1)
		if err != nil {
			return ImageBatchRequirements{}, err
		}
		shape, err := types.MakeTensorShape(
			[]int64{int64(numImages), imgReqs.Planes[p].Height, imgReqs.Planes[p].Width, int64(dt.Channels())},
			types.LayoutNHWC,
		)
		if err != nil {
			return ImageBatchRequirements{}, err
		}
		planeReqs, err := CalcTensorRequirements(shape, base, align)
		if err != nil {
			return ImageBatchRequirements{}, err
		}

		offset = types.AlignUp(offset, reqs.BaseAlign)
		reqs.PlaneReqs[p] = planeReqs
		reqs.PlaneOffs[p] = offset
		offset += planeReqs.TotalBytes
	}
	reqs.TotalBytes = offset

	return reqs, nil
}
