package core

import (
	"fmt"
	"unsafe"

	"github.com/lumen-cv/lumen/internal/alloc"
	"github.com/lumen-cv/lumen/internal/types"
)

// imageStorage mirrors tensorStorage for images: one owning and one wrapping
// variant, fixed at construction.
type imageStorage interface {
	destroy(snapshot ImageData)
}

type ownedImageStorage struct {
	alloc  alloc.Allocator
	buffer alloc.Buffer
}

func (s *ownedImageStorage) destroy(ImageData) {
	s.alloc.Deallocate(s.buffer)
}

type wrappedImageStorage struct {
	cleanup func(ImageData)
}

func (s *wrappedImageStorage) destroy(snapshot ImageData) {
	if s.cleanup != nil {
		s.cleanup(snapshot)
	}
}

// Image is a handle-backed image entity: one or more planes of pixel data in
// a fixed format, either owning allocator memory or wrapping external
// memory.
type Image struct {
	handle  Handle
	data    ImageData
	storage imageStorage
}

// NewImage allocates an owning image laid out per the given requirements.
// All planes are carved out of a single allocation at their precomputed
// offsets. A nil allocator selects the default host allocator.
func NewImage(reqs ImageRequirements, a alloc.Allocator) (*Image, error) {
	if reqs.TotalBytes <= 0 || reqs.NumPlanes == 0 {
		return nil, fmt.Errorf("%w: empty image requirements", types.ErrInvalidArgument)
	}
	if a == nil {
		a = alloc.NewHostAllocator()
	}

	buf, err := a.Allocate(reqs.TotalBytes, reqs.BaseAlign)
	if err != nil {
		return nil, fmt.Errorf("image allocation failed: %w", err)
	}

	img := &Image{
		data: ImageData{
			Format:    reqs.Format,
			Width:     reqs.Width,
			Height:    reqs.Height,
			Kind:      a.Kind(),
			Device:    buf.DeviceHandle(),
			NumPlanes: reqs.NumPlanes,
		},
		storage: &ownedImageStorage{alloc: a, buffer: buf},
	}
	for p := 0; p < int(reqs.NumPlanes); p++ {
		pl := reqs.Planes[p]
		img.data.Planes[p] = ImagePlaneData{
			Offset:    pl.Offset,
			RowStride: pl.RowStride,
		}
		if buf.Ptr != nil {
			img.data.Planes[p].Ptr = unsafe.Add(buf.Ptr, uintptr(pl.Offset))
		}
	}

	img.handle = registry.register(img)
	return img, nil
}

// NewImageFromFormat computes requirements for size+format+alignment and
// allocates an owning image from them.
func NewImageFromFormat(width, height int64, format types.ImageFormat, align types.MemAlignment, a alloc.Allocator) (*Image, error) {
	reqs, err := CalcImageRequirements(width, height, format, align)
	if err != nil {
		return nil, err
	}
	return NewImage(reqs, a)
}

// WrapImageData builds a wrapping image over externally described memory.
// The optional cleanup callback fires exactly once at Destroy with the
// wrap-time descriptor snapshot; no allocator is ever involved.
func WrapImageData(data ImageData, cleanup func(ImageData)) (*Image, error) {
	if data.Format.IsZero() || data.NumPlanes == 0 {
		return nil, fmt.Errorf("%w: wrapped image data has no format", types.ErrInvalidArgument)
	}
	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("%w: wrapped image size %dx%d must be positive", types.ErrInvalidArgument, data.Width, data.Height)
	}
	if int(data.NumPlanes) != data.Format.NumPlanes() {
		return nil, fmt.Errorf("%w: descriptor has %d planes, format needs %d",
			types.ErrInvalidArgument, data.NumPlanes, data.Format.NumPlanes())
	}
	for p := 0; p < int(data.NumPlanes); p++ {
		if data.Planes[p].Ptr == nil && data.Device == nil {
			return nil, fmt.Errorf("%w: plane %d has no memory", types.ErrInvalidArgument, p)
		}
	}

	img := &Image{
		data:    data, // value copy is the wrap-time snapshot
		storage: &wrappedImageStorage{cleanup: cleanup},
	}
	img.handle = registry.register(img)
	return img, nil
}

// Handle returns the image's opaque handle, NilHandle after Destroy.
func (img *Image) Handle() Handle {
	if img.storage == nil {
		return NilHandle
	}
	return img.handle
}

// Size returns the full-resolution width and height.
func (img *Image) Size() (width, height int64) {
	return img.data.Width, img.data.Height
}

// Format returns the image's pixel format.
func (img *Image) Format() types.ImageFormat {
	return img.data.Format
}

// IsOwning reports whether the image owns its memory.
func (img *Image) IsOwning() bool {
	_, ok := img.storage.(*ownedImageStorage)
	return ok
}

// ExportData returns the image's current strided descriptor. Returns
// ok=false after Destroy.
func (img *Image) ExportData() (ImageData, bool) {
	if img.storage == nil {
		return ImageData{}, false
	}
	return img.data, true
}

// ExportDataOn returns the descriptor only when the image's memory lives on
// the requested kind; a mismatch is a probe miss.
func (img *Image) ExportDataOn(kind alloc.MemKind) (ImageData, bool) {
	if img.storage == nil || img.data.Kind != kind {
		return ImageData{}, false
	}
	return img.data, true
}

// Destroy tears the image down: owning images return their buffer to the
// allocator, wrapping images fire the cleanup callback once. Idempotent.
func (img *Image) Destroy() {
	if img.storage == nil {
		return
	}
	st := img.storage
	img.storage = nil
	registry.unregister(img.handle)
	st.destroy(img.data)
}
