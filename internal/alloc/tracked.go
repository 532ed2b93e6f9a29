package alloc

import "sync"

// TrackedAllocator decorates another allocator with live-allocation
// accounting. Useful for leak checks in tests and for exposing memory stats.
type TrackedAllocator struct {
	inner Allocator

	mu             sync.Mutex
	liveBuffers    int64
	liveBytes      int64
	totalAllocated int64
	peakBytes      int64
}

// NewTrackedAllocator wraps inner with allocation tracking.
func NewTrackedAllocator(inner Allocator) *TrackedAllocator {
	return &TrackedAllocator{inner: inner}
}

// Allocate forwards to the inner allocator and records the allocation.
func (t *TrackedAllocator) Allocate(size, align int64) (Buffer, error) {
	buf, err := t.inner.Allocate(size, align)
	if err != nil {
		return Buffer{}, err
	}

	t.mu.Lock()
	t.liveBuffers++
	t.liveBytes += buf.Size
	t.totalAllocated++
	if t.liveBytes > t.peakBytes {
		t.peakBytes = t.liveBytes
	}
	t.mu.Unlock()

	return buf, nil
}

// Deallocate forwards to the inner allocator and records the release.
func (t *TrackedAllocator) Deallocate(b Buffer) {
	t.mu.Lock()
	t.liveBuffers--
	t.liveBytes -= b.Size
	t.mu.Unlock()

	t.inner.Deallocate(b)
}

// Kind returns the inner allocator's memory kind.
func (t *TrackedAllocator) Kind() MemKind {
	return t.inner.Kind()
}

// Stats returns live buffer count, live bytes, total allocations and peak
// live bytes.
func (t *TrackedAllocator) Stats() (liveBuffers, liveBytes, totalAllocated, peakBytes int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liveBuffers, t.liveBytes, t.totalAllocated, t.peakBytes
}
