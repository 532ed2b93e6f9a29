// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package core

import (
	"github.com/lumen-cv/lumen/alloc"
	"github.com/lumen-cv/lumen/internal/core"
	"github.com/lumen-cv/lumen/types"
)

// Handle is an opaque process-wide identifier of a live resource. Handle
// values are unique for the lifetime of the process and never reused.
type Handle = core.Handle

// NilHandle is the handle of no resource.
const NilHandle = core.NilHandle

// TensorData is a non-owning descriptor of a tensor's memory: shape,
// element type, strides and base address.
type TensorData = core.TensorData

// ImagePlaneData is a non-owning descriptor of one image plane.
type ImagePlaneData = core.ImagePlaneData

// ImageData is a non-owning descriptor of an image's memory, one plane
// entry per format plane.
type ImageData = core.ImageData

// Tensor is a handle-backed n-dimensional array resource.
type Tensor = core.Tensor

// Image is a handle-backed image resource with per-plane memory.
type Image = core.Image

// ImageBatchVarShape is a handle-backed, bounded-capacity ordered sequence
// of independently sized images. The batch references images, it does not
// own them.
type ImageBatchVarShape = core.ImageBatchVarShape

// NewTensor allocates a tensor with the given layout through the allocator
// (nil selects the host allocator). The tensor owns its memory.
func NewTensor(reqs TensorRequirements, a alloc.Allocator) (*Tensor, error) {
	return core.NewTensor(reqs, a)
}

// NewTensorFromShape computes the layout for shape and dtype and allocates
// a tensor for it.
func NewTensorFromShape(shape types.TensorShape, dtype types.DataType, align types.MemAlignment, a alloc.Allocator) (*Tensor, error) {
	return core.NewTensorFromShape(shape, dtype, align, a)
}

// WrapTensorData builds a tensor around caller-owned memory. The optional
// cleanup fires exactly once on Destroy with the wrap-time descriptor; no
// allocator is ever involved.
func WrapTensorData(data TensorData, cleanup func(TensorData)) (*Tensor, error) {
	return core.WrapTensorData(data, cleanup)
}

// TensorWrapImage builds a zero-copy tensor view of a single-plane image.
// The tensor must not outlive the image.
func TensorWrapImage(img *Image) (*Tensor, error) {
	return core.TensorWrapImage(img)
}

// NewImage allocates an image with the given layout through the allocator
// (nil selects the host allocator). The image owns its memory.
func NewImage(reqs ImageRequirements, a alloc.Allocator) (*Image, error) {
	return core.NewImage(reqs, a)
}

// NewImageFromFormat computes the layout for the size and format and
// allocates an image for it.
func NewImageFromFormat(width, height int64, format types.ImageFormat, align types.MemAlignment, a alloc.Allocator) (*Image, error) {
	return core.NewImageFromFormat(width, height, format, align, a)
}

// WrapImageData builds an image around caller-owned plane memory. The
// optional cleanup fires exactly once on Destroy with the wrap-time
// descriptor.
func WrapImageData(data ImageData, cleanup func(ImageData)) (*Image, error) {
	return core.WrapImageData(data, cleanup)
}

// NewImageBatchVarShape creates an empty batch with a fixed capacity.
func NewImageBatchVarShape(capacity int) (*ImageBatchVarShape, error) {
	return core.NewImageBatchVarShape(capacity)
}

// ResolveTensor returns the live tensor behind a handle, ok=false when the
// handle is stale or belongs to another resource type.
func ResolveTensor(h Handle) (*Tensor, bool) {
	return core.ResolveTensor(h)
}

// ResolveImage returns the live image behind a handle.
func ResolveImage(h Handle) (*Image, bool) {
	return core.ResolveImage(h)
}

// ResolveImageBatch returns the live batch behind a handle.
func ResolveImageBatch(h Handle) (*ImageBatchVarShape, bool) {
	return core.ResolveImageBatch(h)
}
