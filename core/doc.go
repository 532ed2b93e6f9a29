// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package core provides the handle-based resource types of the Lumen
// library: tensors, images and variable-shape image batches, together with
// the deterministic layout calculator that sizes their buffers.
//
// # Resources
//
// A resource either owns its memory (allocated through an alloc.Allocator
// at construction, freed exactly once on Destroy) or wraps caller-owned
// memory (an optional cleanup callback fires exactly once on Destroy, no
// allocator involved). Every live resource has a unique process-wide
// Handle that can be resolved back to the resource until it is destroyed;
// handle values are never reused.
//
// # Layout calculation
//
// CalcTensorRequirements, CalcImageRequirements and
// CalcImageBatchRequirements are pure functions from a description (shape,
// element type, format, alignment policy) to a complete buffer layout:
// strides, per-plane offsets and total byte size. Allocation is a separate
// step, so layouts can be computed, inspected and compared without
// touching memory.
//
// # Basic Usage
//
//	shape, _ := types.MakeTensorShape([]int64{1, 1080, 1920, 3}, types.LayoutNHWC)
//	tensor, err := core.NewTensorFromShape(shape, types.U8, types.MemAlignment{}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tensor.Destroy()
//
//	data, _ := tensor.ExportData()
//	view, ok := core.MakeTensorImageAccess(data)
//
// # Data access
//
// ExportData returns a non-owning descriptor of the resource's memory; the
// access types derive row/sample/plane oriented reads from a descriptor
// without taking ownership. Both are snapshots: they stay valid only while
// the resource is alive.
package core
