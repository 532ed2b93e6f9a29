// Package webgpu implements a device-memory allocator on top of WebGPU
// storage buffers, with a size-categorized buffer pool to cut allocation
// overhead on the device.
package webgpu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/lumen-cv/lumen/internal/alloc"
	"github.com/lumen-cv/lumen/internal/types"
)

// copyAlignment is the WebGPU copy-buffer alignment. Every buffer size is
// rounded up to it.
const copyAlignment = 4

// defaultUsage covers compute dispatch plus both copy directions.
const defaultUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst

// Allocator allocates GPU-resident buffers through a WebGPU device. It
// satisfies the core's alloc.Allocator capability set; base alignment is
// handled by the device itself, which always returns suitably aligned
// buffers.
//
// Allocator is safe for concurrent use.
type Allocator struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	pool *bufferPool

	statsMu       sync.Mutex
	liveBytes     int64
	peakBytes     int64
	activeBuffers int64
}

// New initializes WebGPU and returns a device allocator. Returns an error if
// no adapter or device is available.
func New() (a *Allocator, err error) {
	// Recover from panic if the wgpu native library is not present.
	defer func() {
		if r := recover(); r != nil {
			a = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance, instanceErr := wgpu.CreateInstance(nil)
	if instanceErr != nil {
		return nil, fmt.Errorf("webgpu: failed to create instance: %w", instanceErr)
	}
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	slog.Debug("webgpu device allocator initialized")

	return &Allocator{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
		pool:     newBufferPool(device),
	}, nil
}

// Allocate returns a device buffer of at least size bytes. May block while
// the device services the allocation.
func (a *Allocator) Allocate(size, align int64) (alloc.Buffer, error) {
	if size <= 0 {
		return alloc.Buffer{}, fmt.Errorf("%w: allocation size %d must be > 0", types.ErrInvalidArgument, size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return alloc.Buffer{}, fmt.Errorf("%w: alignment %d is not a power of two", types.ErrInvalidArgument, align)
	}

	alignedSize := (uint64(size) + copyAlignment - 1) &^ (copyAlignment - 1)

	buf := a.pool.acquire(alignedSize, defaultUsage)
	if buf == nil {
		return alloc.Buffer{}, fmt.Errorf("%w: webgpu buffer creation failed for %d bytes", types.ErrOutOfMemory, alignedSize)
	}

	a.statsMu.Lock()
	a.activeBuffers++
	a.liveBytes += int64(alignedSize)
	if a.liveBytes > a.peakBytes {
		a.peakBytes = a.liveBytes
	}
	a.statsMu.Unlock()

	return alloc.NewDeviceBuffer(buf, int64(alignedSize), align), nil
}

// Deallocate returns the device buffer to the pool.
func (a *Allocator) Deallocate(b alloc.Buffer) {
	buf, ok := b.DeviceHandle().(*wgpu.Buffer)
	if !ok || buf == nil {
		return
	}

	a.statsMu.Lock()
	a.activeBuffers--
	a.liveBytes -= b.Size
	a.statsMu.Unlock()

	a.pool.release(buf, uint64(b.Size), defaultUsage)
}

// Kind returns DeviceMem.
func (a *Allocator) Kind() alloc.MemKind {
	return alloc.DeviceMem
}

// Upload writes host bytes into a device buffer at offset 0.
func (a *Allocator) Upload(b alloc.Buffer, data []byte) error {
	buf, ok := b.DeviceHandle().(*wgpu.Buffer)
	if !ok || buf == nil {
		return fmt.Errorf("%w: not a webgpu buffer", types.ErrInvalidArgument)
	}
	a.queue.WriteBuffer(buf, 0, data)
	return nil
}

// Stats returns active buffer count, live bytes and peak live bytes.
func (a *Allocator) Stats() (activeBuffers, liveBytes, peakBytes int64) {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()
	return a.activeBuffers, a.liveBytes, a.peakBytes
}

// Release drains the pool and releases all WebGPU resources. The allocator
// must not be used afterwards; buffers it produced must already be
// deallocated.
func (a *Allocator) Release() {
	if a.pool != nil {
		a.pool.clear()
		a.pool = nil
	}
	if a.device != nil {
		a.device.Release()
		a.device = nil
	}
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
	if a.instance != nil {
		a.instance.Release()
		a.instance = nil
	}
}
