// Package core implements the handle-backed entities of the Lumen resource
// core: tensors, images and variable-shape image batches, together with the
// requirements calculator, strided data descriptors and non-owning
// data-access views.
package core

import (
	"fmt"
	"unsafe"

	"github.com/lumen-cv/lumen/internal/alloc"
	"github.com/lumen-cv/lumen/internal/types"
)

// tensorStorage is the closed set of lifecycle modes a tensor can be in.
// Exactly one variant is populated for the entity's whole lifetime.
type tensorStorage interface {
	// destroy releases whatever the storage holds. Called exactly once.
	destroy(snapshot TensorData)
}

// ownedTensorStorage backs a tensor whose memory came from an allocator. The
// buffer goes back to that same allocator at destroy time.
type ownedTensorStorage struct {
	alloc  alloc.Allocator
	buffer alloc.Buffer
}

func (s *ownedTensorStorage) destroy(TensorData) {
	s.alloc.Deallocate(s.buffer)
}

// wrappedTensorStorage backs a tensor over caller-supplied memory. The
// cleanup callback, if any, receives the wrap-time descriptor snapshot; an
// allocator is never involved.
type wrappedTensorStorage struct {
	cleanup func(TensorData)
}

func (s *wrappedTensorStorage) destroy(snapshot TensorData) {
	if s.cleanup != nil {
		// A panic here is fatal: there is no safe unwind point during
		// teardown, so it propagates.
		s.cleanup(snapshot)
	}
}

// Tensor is a handle-backed multi-dimensional array entity. It either owns
// memory obtained from an allocator or wraps externally supplied memory; the
// mode is fixed at construction. Tensors are not safe for concurrent use
// with their own Destroy.
type Tensor struct {
	handle  Handle
	data    TensorData
	storage tensorStorage
}

// NewTensor allocates an owning tensor laid out per the given requirements.
// A nil allocator selects the default host allocator. On failure no entity
// and no allocation remain.
func NewTensor(reqs TensorRequirements, a alloc.Allocator) (*Tensor, error) {
	if reqs.TotalBytes <= 0 || reqs.Rank == 0 {
		return nil, fmt.Errorf("%w: empty tensor requirements", types.ErrInvalidArgument)
	}
	if a == nil {
		a = alloc.NewHostAllocator()
	}

	buf, err := a.Allocate(reqs.TotalBytes, reqs.BaseAlign)
	if err != nil {
		return nil, fmt.Errorf("tensor allocation failed: %w", err)
	}

	t := &Tensor{
		data: TensorData{
			Shape:   reqs.Shape,
			DType:   reqs.DType,
			Kind:    a.Kind(),
			Ptr:     buf.Ptr,
			Device:  buf.DeviceHandle(),
			Strides: reqs.Strides,
		},
		storage: &ownedTensorStorage{alloc: a, buffer: buf},
	}
	t.handle = registry.register(t)
	return t, nil
}

// NewTensorFromShape computes requirements for shape+dtype+alignment and
// allocates an owning tensor from them.
func NewTensorFromShape(shape types.TensorShape, dtype types.DataType, align types.MemAlignment, a alloc.Allocator) (*Tensor, error) {
	reqs, err := CalcTensorRequirements(shape, dtype, align)
	if err != nil {
		return nil, err
	}
	return NewTensor(reqs, a)
}

// WrapTensorData builds a wrapping tensor over externally described memory.
// The optional cleanup callback fires exactly once at Destroy and receives
// the descriptor as it is now, not as it may later be observed. The wrapped
// memory is never passed to an allocator.
func WrapTensorData(data TensorData, cleanup func(TensorData)) (*Tensor, error) {
	if data.Shape.Rank() == 0 {
		return nil, fmt.Errorf("%w: wrapped tensor data has no shape", types.ErrInvalidArgument)
	}
	if data.DType.IsZero() {
		return nil, fmt.Errorf("%w: wrapped tensor data has no data type", types.ErrInvalidArgument)
	}
	if data.Ptr == nil && data.Device == nil {
		return nil, fmt.Errorf("%w: wrapped tensor data has no memory", types.ErrInvalidArgument)
	}

	t := &Tensor{
		data:    data, // value copy is the wrap-time snapshot
		storage: &wrappedTensorStorage{cleanup: cleanup},
	}
	t.handle = registry.register(t)
	return t, nil
}

// TensorWrapImage reinterprets a single-plane image's memory as a rank-4
// NHWC tensor (N=1) without copying. The image keeps governing the memory's
// lifetime: the returned tensor must not outlive it.
func TensorWrapImage(img *Image) (*Tensor, error) {
	data, ok := img.ExportData()
	if !ok {
		return nil, fmt.Errorf("%w: image is destroyed", types.ErrInvalidArgument)
	}
	if data.Format.NumPlanes() != 1 {
		return nil, fmt.Errorf("%w: cannot view %d-plane image as a tensor", types.ErrInvalidArgument, data.Format.NumPlanes())
	}

	dt := data.Format.PlaneDataType(0)
	base, err := types.MakeDataType(dt.Kind(), dt.Bits(), 1)
	if err != nil {
		return nil, err
	}
	shape, err := types.MakeTensorShape(
		[]int64{1, data.Height, data.Width, int64(dt.Channels())},
		types.LayoutNHWC,
	)
	if err != nil {
		return nil, err
	}

	td := TensorData{
		Shape:  shape,
		DType:  base,
		Kind:   data.Kind,
		Ptr:    data.Planes[0].Ptr,
		Device: data.Device,
	}
	td.Strides[3] = base.Size()
	td.Strides[2] = base.Size() * int64(dt.Channels())
	td.Strides[1] = data.Planes[0].RowStride
	td.Strides[0] = td.Strides[1] * data.Height

	return WrapTensorData(td, nil)
}

// Handle returns the tensor's opaque handle, NilHandle after Destroy.
func (t *Tensor) Handle() Handle {
	if t.storage == nil {
		return NilHandle
	}
	return t.handle
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() types.TensorShape {
	return t.data.Shape
}

// DType returns the tensor's element type.
func (t *Tensor) DType() types.DataType {
	return t.data.DType
}

// IsOwning reports whether the tensor owns its memory (as opposed to
// wrapping external memory).
func (t *Tensor) IsOwning() bool {
	_, ok := t.storage.(*ownedTensorStorage)
	return ok
}

// ExportData returns the tensor's current strided descriptor. Returns
// ok=false after Destroy.
func (t *Tensor) ExportData() (TensorData, bool) {
	if t.storage == nil {
		return TensorData{}, false
	}
	return t.data, true
}

// ExportDataOn returns the descriptor only when the tensor's memory lives on
// the requested kind. A mismatch is a probe miss, not an error: callers
// routinely try several view kinds.
func (t *Tensor) ExportDataOn(kind alloc.MemKind) (TensorData, bool) {
	if t.storage == nil || t.data.Kind != kind {
		return TensorData{}, false
	}
	return t.data, true
}

// Bytes returns the tensor's memory as a byte slice for host-visible
// tensors, nil otherwise.
func (t *Tensor) Bytes() []byte {
	if t.storage == nil {
		return nil
	}
	return t.data.Bytes()
}

// AsUint8 interprets host-visible memory as []uint8.
// Panics if the dtype's component is not 8-bit unsigned.
func (t *Tensor) AsUint8() []uint8 {
	if t.data.DType.Kind() != types.Unsigned || t.data.DType.Bits() != 8 {
		panic(fmt.Sprintf("tensor dtype is %s, not u8", t.data.DType))
	}
	return t.Bytes()
}

// AsFloat32 interprets host-visible memory as []float32, one entry per
// channel component. Panics if the dtype's component is not float32.
func (t *Tensor) AsFloat32() []float32 {
	if t.data.DType.Kind() != types.Float || t.data.DType.Bits() != 32 {
		panic(fmt.Sprintf("tensor dtype is %s, not f32", t.data.DType))
	}
	b := t.Bytes()
	if b == nil {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), len(b)/4)
}

// Destroy tears the tensor down: owning tensors return their buffer to the
// allocator, wrapping tensors fire the cleanup callback with the wrap-time
// snapshot. Idempotent; the handle is invalidated before any release work
// runs.
func (t *Tensor) Destroy() {
	if t.storage == nil {
		return
	}
	st := t.storage
	t.storage = nil
	registry.unregister(t.handle)
	st.destroy(t.data)
}
