// Copyright 2025 Lumen Computer Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides a WebGPU-backed device memory allocator.
//
// WebGPU is a cross-platform graphics and compute API; buffers allocated
// here live in GPU memory and are recycled through an internal pool.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err) // no compatible GPU or native library missing
//	}
//	defer gpu.Release()
//
//	tensor, _ := core.NewTensorFromShape(shape, types.F32, types.MemAlignment{}, gpu)
package webgpu

import (
	"github.com/lumen-cv/lumen/alloc"
	internalwebgpu "github.com/lumen-cv/lumen/internal/alloc/webgpu"
)

// Allocator is the WebGPU device memory allocator.
type Allocator = internalwebgpu.Allocator

// Compile-time check that Allocator implements alloc.Allocator.
var _ alloc.Allocator = (*Allocator)(nil)

// New initializes the WebGPU device and returns an allocator ready for use.
// Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g. no compatible GPU
// or the native library is missing).
func New() (*Allocator, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether WebGPU can be initialized on this system.
func IsAvailable() bool {
	a, err := internalwebgpu.New()
	if err != nil {
		return false
	}
	a.Release()
	return true
}
