package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Size thresholds for pool categories.
const (
	smallThreshold  = 4 * 1024    // 4KB
	mediumThreshold = 1024 * 1024 // 1MB
	maxPoolSize     = 100         // max pooled buffers per category
)

type sizeCategory int

const (
	smallBuffer sizeCategory = iota
	mediumBuffer
	largeBuffer
)

// pooledBuffer wraps a GPU buffer with the metadata needed for reuse checks.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// bufferPool reuses released device buffers, categorized by size, so repeated
// entity construction does not hammer the device allocator.
type bufferPool struct {
	device *wgpu.Device

	mu     sync.Mutex
	small  []*pooledBuffer
	medium []*pooledBuffer
	large  []*pooledBuffer

	hits   uint64
	misses uint64
}

func newBufferPool(device *wgpu.Device) *bufferPool {
	return &bufferPool{
		device: device,
		small:  make([]*pooledBuffer, 0, maxPoolSize),
		medium: make([]*pooledBuffer, 0, maxPoolSize),
		large:  make([]*pooledBuffer, 0, maxPoolSize),
	}
}

// acquire returns a pooled buffer that matches or exceeds the requested size
// and usage, or creates a new one.
func (p *bufferPool) acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	category := categorize(size)
	pool := p.pool(category)

	for i, pb := range pool {
		if pb.size >= size && pb.usage&usage == usage {
			buffer := pb.buffer
			p.remove(category, i)
			p.hits++
			return buffer
		}
	}

	p.misses++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// release returns a buffer to the pool, or frees it when the category is
// full.
func (p *bufferPool) release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	category := categorize(size)
	if len(p.pool(category)) >= maxPoolSize {
		buffer.Release()
		return
	}

	pb := &pooledBuffer{buffer: buffer, size: size, usage: usage}
	switch category {
	case smallBuffer:
		p.small = append(p.small, pb)
	case mediumBuffer:
		p.medium = append(p.medium, pb)
	case largeBuffer:
		p.large = append(p.large, pb)
	}
}

// clear frees every pooled buffer.
func (p *bufferPool) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pool := range [][]*pooledBuffer{p.small, p.medium, p.large} {
		for _, pb := range pool {
			pb.buffer.Release()
		}
	}
	p.small = p.small[:0]
	p.medium = p.medium[:0]
	p.large = p.large[:0]
}

// stats returns pool hit and miss counts.
func (p *bufferPool) stats() (hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

func categorize(size uint64) sizeCategory {
	if size < smallThreshold {
		return smallBuffer
	}
	if size < mediumThreshold {
		return mediumBuffer
	}
	return largeBuffer
}

func (p *bufferPool) pool(category sizeCategory) []*pooledBuffer {
	switch category {
	case smallBuffer:
		return p.small
	case mediumBuffer:
		return p.medium
	case largeBuffer:
		return p.large
	default:
		return nil
	}
}

func (p *bufferPool) remove(category sizeCategory, i int) {
	switch category {
	case smallBuffer:
		p.small = append(p.small[:i], p.small[i+1:]...)
	case mediumBuffer:
		p.medium = append(p.medium[:i], p.medium[i+1:]...)
	case largeBuffer:
		p.large = append(p.large[:i], p.large[i+1:]...)
	}
}
