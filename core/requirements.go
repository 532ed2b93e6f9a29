// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package core

import (
	"github.com/lumen-cv/lumen/internal/core"
	"github.com/lumen-cv/lumen/types"
)

// TensorRequirements is the complete buffer layout for a tensor: strides,
// alignments and total byte size.
type TensorRequirements = core.TensorRequirements

// PlaneLayout is the placement of one image plane inside its buffer.
type PlaneLayout = core.PlaneLayout

// ImageRequirements is the complete buffer layout for an image, one
// PlaneLayout per format plane.
type ImageRequirements = core.ImageRequirements

// ImageBatchRequirements is the buffer layout for a batch of uniformly
// sized images, expressed as per-plane tensor layouts.
type ImageBatchRequirements = core.ImageBatchRequirements

// CalcTensorRequirements computes the buffer layout for a tensor with the
// given shape and element type. Pure and deterministic: identical inputs
// give identical results.
func CalcTensorRequirements(shape types.TensorShape, dtype types.DataType, align types.MemAlignment) (TensorRequirements, error) {
	return core.CalcTensorRequirements(shape, dtype, align)
}

// CalcImageRequirements computes the per-plane buffer layout for an image
// of the given size and format.
func CalcImageRequirements(width, height int64, format types.ImageFormat, align types.MemAlignment) (ImageRequirements, error) {
	return core.CalcImageRequirements(width, height, format, align)
}

// CalcImageBatchRequirements computes the buffer layout for numImages
// uniformly sized images stored as per-plane tensors.
func CalcImageBatchRequirements(numImages int32, width, height int64, format types.ImageFormat, align types.MemAlignment) (ImageBatchRequirements, error) {
	return core.CalcImageBatchRequirements(numImages, width, height, format, align)
}
