// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package types

import (
	"github.com/lumen-cv/lumen/internal/types"
)

// Type aliases for public API

// TensorLayout tags each axis of a tensor with a one-letter semantic label
// (N, H, W, C, D, F). The zero value means "no layout".
type TensorLayout = types.TensorLayout

// Common layouts.
const (
	LayoutNone TensorLayout = types.LayoutNone
	LayoutW    TensorLayout = types.LayoutW
	LayoutHW   TensorLayout = types.LayoutHW
	LayoutHWC  TensorLayout = types.LayoutHWC
	LayoutCHW  TensorLayout = types.LayoutCHW
	LayoutNW   TensorLayout = types.LayoutNW
	LayoutNHW  TensorLayout = types.LayoutNHW
	LayoutNHWC TensorLayout = types.LayoutNHWC
	LayoutNCHW TensorLayout = types.LayoutNCHW
)

// TensorShape is an immutable list of positive extents with an optional
// layout tagging each axis.
type TensorShape = types.TensorShape

// MaxRank is the maximum number of axes a shape may have.
const MaxRank = types.MaxRank

// ComponentKind classifies the numeric interpretation of a component.
type ComponentKind = types.ComponentKind

// Component kinds.
const (
	Unsigned ComponentKind = types.Unsigned
	Signed   ComponentKind = types.Signed
	Float    ComponentKind = types.Float
)

// DataType describes a packed element: component kind, bit width and the
// number of interleaved channels.
type DataType = types.DataType

// Predefined element types.
var (
	U8    = types.U8
	U8x2  = types.U8x2
	U8x3  = types.U8x3
	U8x4  = types.U8x4
	U16   = types.U16
	S8    = types.S8
	S16   = types.S16
	S32   = types.S32
	S64   = types.S64
	F32   = types.F32
	F32x3 = types.F32x3
	F32x4 = types.F32x4
	F64   = types.F64
)

// Plane describes one plane of an image format: its element type and chroma
// subsampling (log2 factors relative to full resolution).
type Plane = types.Plane

// ImageFormat describes the per-plane memory interpretation of an image.
type ImageFormat = types.ImageFormat

// MaxPlanes is the maximum number of planes an image format may have.
const MaxPlanes = types.MaxPlanes

// Predefined image formats.
var (
	GRAY8   = types.GRAY8
	GRAY16  = types.GRAY16
	RGB8    = types.RGB8
	RGBA8   = types.RGBA8
	RGBf32  = types.RGBf32
	NV12    = types.NV12
	YUV420p = types.YUV420p
)

// MemAlignment is a buffer layout policy: base address and row stride
// alignment, both powers of two. The zero value selects the defaults.
type MemAlignment = types.MemAlignment

// Default alignments used when a MemAlignment component is zero.
const (
	DefaultBaseAlign = types.DefaultBaseAlign
	DefaultRowAlign  = types.DefaultRowAlign
)

// Sentinel errors.
var (
	ErrInvalidArgument  = types.ErrInvalidArgument
	ErrOutOfMemory      = types.ErrOutOfMemory
	ErrCapacityExceeded = types.ErrCapacityExceeded
)

// MakeTensorLayout builds a layout from a label string, validating that
// every label is recognized and appears at most once.
func MakeTensorLayout(labels string) (TensorLayout, error) {
	return types.MakeTensorLayout(labels)
}

// MakeTensorShape builds a validated shape from extents and a layout. The
// layout may be LayoutNone; otherwise its rank must match the extents.
func MakeTensorShape(extents []int64, layout TensorLayout) (TensorShape, error) {
	return types.MakeTensorShape(extents, layout)
}

// MakeDataType builds a validated element type.
func MakeDataType(kind ComponentKind, bits, channels int32) (DataType, error) {
	return types.MakeDataType(kind, bits, channels)
}

// MakeImageFormat builds a validated image format from its planes. The
// first plane must be full resolution.
func MakeImageFormat(planes ...Plane) (ImageFormat, error) {
	return types.MakeImageFormat(planes...)
}

// MakeMemAlignment builds a validated alignment policy. Zero components
// select the defaults.
func MakeMemAlignment(baseAlign, rowAlign int64) (MemAlignment, error) {
	return types.MakeMemAlignment(baseAlign, rowAlign)
}

// AlignUp rounds v up to the next multiple of align (a power of two).
func AlignUp(v, align int64) int64 {
	return types.AlignUp(v, align)
}
