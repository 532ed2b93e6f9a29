package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-cv/lumen/internal/types"
)

func testImage(t *testing.T, w, h int64) *Image {
	t.Helper()
	img, err := NewImageFromFormat(w, h, types.GRAY8, types.MemAlignment{}, nil)
	require.NoError(t, err)
	t.Cleanup(img.Destroy)
	return img
}

func TestImageBatchPushBack(t *testing.T) {
	batch, err := NewImageBatchVarShape(3)
	require.NoError(t, err)
	defer batch.Destroy()

	assert.Equal(t, 3, batch.Capacity())
	assert.Zero(t, batch.NumImages())

	require.NoError(t, batch.PushBack(testImage(t, 8, 8)))
	require.NoError(t, batch.PushBack(testImage(t, 16, 4)))
	assert.Equal(t, 2, batch.NumImages())

	w, h := batch.MaxSize()
	assert.Equal(t, int64(16), w)
	assert.Equal(t, int64(8), h)
}

func TestImageBatchCapacityExceeded(t *testing.T) {
	batch, err := NewImageBatchVarShape(2)
	require.NoError(t, err)
	defer batch.Destroy()

	first := testImage(t, 8, 8)
	second := testImage(t, 8, 8)
	require.NoError(t, batch.PushBack(first))
	require.NoError(t, batch.PushBack(second))

	// One push past capacity fails and mutates nothing.
	err = batch.PushBack(testImage(t, 8, 8))
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, 2, batch.NumImages())

	got, ok := batch.At(0)
	require.True(t, ok)
	assert.Same(t, first, got)
	got, ok = batch.At(1)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestImageBatchPopBack(t *testing.T) {
	batch, err := NewImageBatchVarShape(4)
	require.NoError(t, err)
	defer batch.Destroy()

	big := testImage(t, 32, 32)
	small := testImage(t, 8, 8)
	require.NoError(t, batch.PushBack(big))
	require.NoError(t, batch.PushBack(small))

	img, ok := batch.PopBack()
	require.True(t, ok)
	assert.Same(t, small, img)

	// Max size tracks removals.
	require.NoError(t, batch.PushBack(testImage(t, 4, 4)))
	_, _ = batch.PopBack()
	got, ok := batch.PopBack()
	require.True(t, ok)
	assert.Same(t, big, got)

	w, h := batch.MaxSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	_, ok = batch.PopBack()
	assert.False(t, ok, "pop on empty batch")
}

func TestImageBatchClear(t *testing.T) {
	batch, err := NewImageBatchVarShape(2)
	require.NoError(t, err)
	defer batch.Destroy()

	require.NoError(t, batch.PushBack(testImage(t, 8, 8)))
	batch.Clear()

	assert.Zero(t, batch.NumImages())
	assert.Equal(t, 2, batch.Capacity(), "clear keeps capacity")
	require.NoError(t, batch.PushBack(testImage(t, 8, 8)))
}

func TestImageBatchExportData(t *testing.T) {
	batch, err := NewImageBatchVarShape(2)
	require.NoError(t, err)
	defer batch.Destroy()

	require.NoError(t, batch.PushBack(testImage(t, 8, 8)))
	require.NoError(t, batch.PushBack(testImage(t, 16, 16)))

	descs, ok := batch.ExportData()
	require.True(t, ok)
	require.Len(t, descs, 2)
	assert.Equal(t, int64(8), descs[0].Width)
	assert.Equal(t, int64(16), descs[1].Width)
}

func TestImageBatchDestroyLeavesImagesAlive(t *testing.T) {
	batch, err := NewImageBatchVarShape(1)
	require.NoError(t, err)

	img := testImage(t, 8, 8)
	require.NoError(t, batch.PushBack(img))

	h := batch.Handle()
	batch.Destroy()

	_, ok := ResolveImageBatch(h)
	assert.False(t, ok)
	assert.ErrorIs(t, batch.PushBack(img), types.ErrInvalidArgument)

	// The image outlives the batch.
	_, ok = img.ExportData()
	assert.True(t, ok)
}

func TestImageBatchInvalidCapacity(t *testing.T) {
	_, err := NewImageBatchVarShape(0)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = NewImageBatchVarShape(-1)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
