package core

import (
	"fmt"

	"github.com/lumen-cv/lumen/internal/types"
)

// ImageBatchVarShape is a handle-backed, bounded-capacity ordered sequence
// of independently sized images. The batch references images; it does not
// own their memory, and destroying the batch leaves its images alive.
type ImageBatchVarShape struct {
	handle   Handle
	capacity int
	images   []*Image

	maxWidth  int64
	maxHeight int64
}

// NewImageBatchVarShape creates an empty batch with a fixed capacity.
func NewImageBatchVarShape(capacity int) (*ImageBatchVarShape, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: batch capacity %d must be > 0", types.ErrInvalidArgument, capacity)
	}
	b := &ImageBatchVarShape{
		capacity: capacity,
		images:   make([]*Image, 0, capacity),
	}
	b.handle = registry.register(b)
	return b, nil
}

// Handle returns the batch's opaque handle, NilHandle after Destroy.
func (b *ImageBatchVarShape) Handle() Handle {
	if b.images == nil {
		return NilHandle
	}
	return b.handle
}

// Capacity returns the fixed capacity.
func (b *ImageBatchVarShape) Capacity() int {
	return b.capacity
}

// NumImages returns the current number of images.
func (b *ImageBatchVarShape) NumImages() int {
	return len(b.images)
}

// PushBack appends an image. Fails with ErrCapacityExceeded once the batch
// is full, leaving the existing contents untouched.
func (b *ImageBatchVarShape) PushBack(img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", types.ErrInvalidArgument)
	}
	if b.images == nil {
		return fmt.Errorf("%w: batch is destroyed", types.ErrInvalidArgument)
	}
	if len(b.images) >= b.capacity {
		return fmt.Errorf("%w: batch is full (%d images)", types.ErrCapacityExceeded, b.capacity)
	}

	b.images = append(b.images, img)
	w, h := img.Size()
	if w > b.maxWidth {
		b.maxWidth = w
	}
	if h > b.maxHeight {
		b.maxHeight = h
	}
	return nil
}

// PopBack removes and returns the last image, ok=false on an empty batch.
func (b *ImageBatchVarShape) PopBack() (*Image, bool) {
	if len(b.images) == 0 {
		return nil, false
	}
	img := b.images[len(b.images)-1]
	b.images = b.images[:len(b.images)-1]
	b.recomputeMaxSize()
	return img, true
}

// At returns the image at index i, ok=false when out of range.
func (b *ImageBatchVarShape) At(i int) (*Image, bool) {
	if i < 0 || i >= len(b.images) {
		return nil, false
	}
	return b.images[i], true
}

// Clear removes all images without affecting capacity.
func (b *ImageBatchVarShape) Clear() {
	b.images = b.images[:0]
	b.maxWidth, b.maxHeight = 0, 0
}

// MaxSize returns the largest width and height over the current images.
func (b *ImageBatchVarShape) MaxSize() (width, height int64) {
	return b.maxWidth, b.maxHeight
}

// ExportData returns the descriptors of all current images in order. Images
// destroyed since insertion are skipped; ok=false after batch Destroy.
func (b *ImageBatchVarShape) ExportData() ([]ImageData, bool) {
	if b.images == nil {
		return nil, false
	}
	out := make([]ImageData, 0, len(b.images))
	for _, img := range b.images {
		if d, ok := img.ExportData(); ok {
			out = append(out, d)
		}
	}
	return out, true
}

// Destroy deregisters the batch. Images it references stay alive; their
// lifetime is their own. Idempotent.
func (b *ImageBatchVarShape) Destroy() {
	if b.images == nil {
		return
	}
	registry.unregister(b.handle)
	b.images = nil
}

func (b *ImageBatchVarShape) recomputeMaxSize() {
	b.maxWidth, b.maxHeight = 0, 0
	for _, img := range b.images {
		w, h := img.Size()
		if w > b.maxWidth {
			b.maxWidth = w
		}
		if h > b.maxHeight {
			b.maxHeight = h
		}
	}
}
