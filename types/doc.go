// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package types provides the value types describing tensor and image data
// in the Lumen library.
//
// # Overview
//
// Everything in this package is an immutable value: shapes, layouts, element
// types, image formats and alignment policies. Values are validated at
// construction (the Make* functions) so that downstream code can rely on
// them without re-checking.
//
//   - TensorShape / TensorLayout: extents with optional per-axis labels
//   - DataType: packed element type (component kind, width, channel count)
//   - ImageFormat: per-plane element types with chroma subsampling
//   - MemAlignment: base and row alignment policy for buffer layouts
//
// # Basic Usage
//
//	layout, _ := types.MakeTensorLayout("NHWC")
//	shape, _ := types.MakeTensorShape([]int64{1, 1080, 1920, 3}, layout)
//	align, _ := types.MakeMemAlignment(256, 32)
//
// Predefined values cover the common cases: types.U8, types.F32,
// types.RGB8, types.NV12, types.LayoutNHWC and friends.
package types
