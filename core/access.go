// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package core

import (
	"github.com/lumen-cv/lumen/internal/core"
)

// TensorDataAccess is a sample-oriented, non-owning read of a tensor
// descriptor.
type TensorDataAccess = core.TensorDataAccess

// TensorImageAccess extends TensorDataAccess with row, column and channel
// accessors for descriptors whose layout tags height and width.
type TensorImageAccess = core.TensorImageAccess

// ImageDataAccess is a plane-oriented, non-owning read of an image
// descriptor.
type ImageDataAccess = core.ImageDataAccess

// MakeTensorDataAccess derives a sample-oriented view from a descriptor,
// ok=false when the descriptor is empty.
func MakeTensorDataAccess(d TensorData) (TensorDataAccess, bool) {
	return core.MakeTensorDataAccess(d)
}

// MakeTensorImageAccess derives an image-oriented view from a descriptor.
// Returns ok=false when the layout does not tag both height and width;
// callers probe for this rather than treating it as a failure.
func MakeTensorImageAccess(d TensorData) (TensorImageAccess, bool) {
	return core.MakeTensorImageAccess(d)
}

// MakeImageDataAccess derives a plane-oriented view from an image
// descriptor, ok=false when the descriptor has no format.
func MakeImageDataAccess(d ImageData) (ImageDataAccess, bool) {
	return core.MakeImageDataAccess(d)
}
