// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-cv/lumen/alloc"
	"github.com/lumen-cv/lumen/core"
	"github.com/lumen-cv/lumen/types"
)

// End-to-end walk over the public API: compute a layout, allocate, export,
// view, destroy.
func TestPublicAPIRoundTrip(t *testing.T) {
	shape, err := types.MakeTensorShape([]int64{1, 480, 640, 3}, types.LayoutNHWC)
	require.NoError(t, err)

	align, err := types.MakeMemAlignment(0, 32)
	require.NoError(t, err)

	reqs, err := core.CalcTensorRequirements(shape, types.U8, align)
	require.NoError(t, err)
	assert.Zero(t, reqs.Strides[1]%32)

	a := alloc.NewTrackedAllocator(alloc.NewHostAllocator())
	tensor, err := core.NewTensor(reqs, a)
	require.NoError(t, err)

	data, ok := tensor.ExportData()
	require.True(t, ok)

	view, ok := core.MakeTensorImageAccess(data)
	require.True(t, ok)
	assert.Equal(t, int64(480), view.NumRows())
	assert.Equal(t, int64(640), view.NumCols())
	assert.Equal(t, int64(3), view.NumChannels())

	h := tensor.Handle()
	resolved, ok := core.ResolveTensor(h)
	require.True(t, ok)
	assert.Same(t, tensor, resolved)

	tensor.Destroy()
	live, _, _, _ := a.Stats()
	assert.Zero(t, live)
	_, ok = core.ResolveTensor(h)
	assert.False(t, ok)
}

func TestPublicAPIImageBatch(t *testing.T) {
	img, err := core.NewImageFromFormat(320, 240, types.RGB8, types.MemAlignment{}, nil)
	require.NoError(t, err)
	defer img.Destroy()

	batch, err := core.NewImageBatchVarShape(4)
	require.NoError(t, err)
	defer batch.Destroy()

	require.NoError(t, batch.PushBack(img))
	w, h := batch.MaxSize()
	assert.Equal(t, int64(320), w)
	assert.Equal(t, int64(240), h)
}
