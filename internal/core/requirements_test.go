package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-cv/lumen/internal/types"
)

func mustShape(t *testing.T, extents []int64, layout types.TensorLayout) types.TensorShape {
	t.Helper()
	s, err := types.MakeTensorShape(extents, layout)
	require.NoError(t, err)
	return s
}

func TestCalcTensorRequirementsPacked(t *testing.T) {
	// {N=5, H=48, W=32}, 1-byte elements, default alignment: the 32-byte
	// row is already aligned, so no padding anywhere.
	shape := mustShape(t, []int64{5, 48, 32}, types.LayoutNHW)

	reqs, err := CalcTensorRequirements(shape, types.U8, types.MemAlignment{})
	require.NoError(t, err)

	assert.Equal(t, int64(5*48*32), reqs.TotalBytes)
	assert.Equal(t, int64(32), reqs.Strides[1], "row stride")
	assert.Equal(t, int64(48*32), reqs.Strides[0], "sample stride")
	assert.Equal(t, int64(1), reqs.Strides[2])
	assert.Equal(t, int32(3), reqs.Rank)
}

func TestCalcTensorRequirementsRowPadding(t *testing.T) {
	// NHWC u8 with a 9-byte natural row: padded up to the row alignment,
	// and the sample stride builds on the padded value.
	shape := mustShape(t, []int64{1, 4, 3, 3}, types.LayoutNHWC)

	reqs, err := CalcTensorRequirements(shape, types.U8, types.MemAlignment{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), reqs.Strides[3])
	assert.Equal(t, int64(3), reqs.Strides[2])
	assert.Equal(t, int64(12), reqs.Strides[1], "9-byte row padded to 12")
	assert.Equal(t, int64(48), reqs.Strides[0])
	assert.Equal(t, int64(48), reqs.TotalBytes)
}

func TestCalcTensorRequirementsCustomRowAlign(t *testing.T) {
	align, err := types.MakeMemAlignment(512, 64)
	require.NoError(t, err)

	shape := mustShape(t, []int64{2, 10, 10}, types.LayoutNHW)
	reqs, err := CalcTensorRequirements(shape, types.U8, align)
	require.NoError(t, err)

	assert.Equal(t, int64(64), reqs.Strides[1], "10-byte row padded to 64")
	assert.Equal(t, int64(640), reqs.Strides[0])
	assert.Equal(t, int64(1280), reqs.TotalBytes)
	assert.Equal(t, int64(512), reqs.BaseAlign)
}

func TestCalcTensorRequirementsUntaggedRowAxis(t *testing.T) {
	// Without a layout the last-but-one axis is the row axis.
	shape := mustShape(t, []int64{3, 5, 7}, types.LayoutNone)

	reqs, err := CalcTensorRequirements(shape, types.U8, types.MemAlignment{})
	require.NoError(t, err)

	assert.Equal(t, int64(8), reqs.Strides[1], "7-byte row padded to 8")
	assert.Equal(t, int64(40), reqs.Strides[0])
}

func TestCalcTensorRequirementsDeterministic(t *testing.T) {
	shape := mustShape(t, []int64{3, 17, 31, 4}, types.LayoutNHWC)
	align, _ := types.MakeMemAlignment(256, 32)

	first, err := CalcTensorRequirements(shape, types.F32, align)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CalcTensorRequirements(shape, types.F32, align)
		require.NoError(t, err)
		assert.Equal(t, first, again, "repeated calls must be bit-identical")
	}
}

func TestCalcTensorRequirementsInvalid(t *testing.T) {
	shape := mustShape(t, []int64{2, 2}, types.LayoutNone)

	_, err := CalcTensorRequirements(types.TensorShape{}, types.U8, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument, "empty shape")

	_, err = CalcTensorRequirements(shape, types.DataType{}, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument, "no dtype")
}

func TestCalcImageRequirementsSinglePlane(t *testing.T) {
	reqs, err := CalcImageRequirements(10, 5, types.GRAY8, types.MemAlignment{})
	require.NoError(t, err)

	require.Equal(t, int32(1), reqs.NumPlanes)
	assert.Equal(t, int64(12), reqs.Planes[0].RowStride, "10-byte row padded to 12")
	assert.Equal(t, int64(0), reqs.Planes[0].Offset)
	assert.Equal(t, int64(60), reqs.TotalBytes)
}

func TestCalcImageRequirementsNV12(t *testing.T) {
	reqs, err := CalcImageRequirements(640, 480, types.NV12, types.MemAlignment{})
	require.NoError(t, err)

	require.Equal(t, int32(2), reqs.NumPlanes)

	// Full-resolution luma plane.
	assert.Equal(t, int64(640), reqs.Planes[0].RowStride)
	assert.Equal(t, int64(640), reqs.Planes[0].Width)
	assert.Equal(t, int64(480), reqs.Planes[0].Height)

	// Interleaved chroma plane at half resolution, 2 bytes per sample.
	assert.Equal(t, int64(640), reqs.Planes[1].RowStride)
	assert.Equal(t, int64(320), reqs.Planes[1].Width)
	assert.Equal(t, int64(240), reqs.Planes[1].Height)

	// Chroma plane starts base-aligned right after the luma plane.
	assert.Equal(t, int64(640*480), reqs.Planes[1].Offset)
	assert.Zero(t, reqs.Planes[1].Offset%reqs.BaseAlign)
	assert.Equal(t, int64(640*480+640*240), reqs.TotalBytes)
}

func TestCalcImageRequirementsOddSubsampledSize(t *testing.T) {
	_, err := CalcImageRequirements(641, 480, types.NV12, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument, "odd width for 2x subsampling")

	_, err = CalcImageRequirements(640, 481, types.YUV420p, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument, "odd height for 2x subsampling")
}

func TestCalcImageRequirementsInvalid(t *testing.T) {
	_, err := CalcImageRequirements(0, 10, types.GRAY8, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = CalcImageRequirements(10, 10, types.ImageFormat{}, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestCalcImageBatchRequirementsSinglePlane(t *testing.T) {
	// 2 RGB8 images of 4x2 are the 4D tensor {2, 2, 4, 3}.
	reqs, err := CalcImageBatchRequirements(2, 4, 2, types.RGB8, types.MemAlignment{})
	require.NoError(t, err)

	require.Equal(t, int32(1), reqs.NumPlanes)
	plane := reqs.PlaneReqs[0]
	assert.Equal(t, []int64{2, 2, 4, 3}, plane.Shape.Extents())
	assert.Equal(t, types.LayoutNHWC, plane.Shape.Layout())
	assert.Equal(t, types.U8, plane.DType)
	assert.Equal(t, int64(12), plane.Strides[1], "row stride")
	assert.Equal(t, int64(24), plane.Strides[0], "image stride")
	assert.Equal(t, int64(48), reqs.TotalBytes)
}

func TestCalcImageBatchRequirementsMultiPlane(t *testing.T) {
	reqs, err := CalcImageBatchRequirements(3, 64, 64, types.NV12, types.MemAlignment{})
	require.NoError(t, err)

	require.Equal(t, int32(2), reqs.NumPlanes)

	// One contiguous strided region per plane, laid out consecutively.
	assert.Equal(t, int64(0), reqs.PlaneOffs[0])
	assert.Equal(t, reqs.PlaneReqs[0].TotalBytes, reqs.PlaneOffs[1], "chroma region follows luma region")
	assert.Zero(t, reqs.PlaneOffs[1]%reqs.BaseAlign)

	luma := reqs.PlaneReqs[0]
	assert.Equal(t, []int64{3, 64, 64, 1}, luma.Shape.Extents())
	chroma := reqs.PlaneReqs[1]
	assert.Equal(t, []int64{3, 32, 32, 2}, chroma.Shape.Extents())
}

func TestCalcImageBatchRequirementsInvalid(t *testing.T) {
	_, err := CalcImageBatchRequirements(0, 4, 4, types.GRAY8, types.MemAlignment{})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
