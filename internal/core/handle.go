package core

import "sync"

// Handle is a stable opaque identifier for an entity, usable across an ABI
// boundary. A handle stays valid exactly as long as its entity is alive and
// is never reused for a different entity within the process.
type Handle uint64

// NilHandle is the invalid handle.
const NilHandle Handle = 0

// handleRegistry maps live handles to their entities. Handles come from a
// monotonically increasing counter, so a stale handle can never resolve to a
// newer entity.
type handleRegistry struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]any
}

var registry = &handleRegistry{entries: make(map[Handle]any)}

func (r *handleRegistry) register(entity any) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := r.next
	r.entries[h] = entity
	return h
}

func (r *handleRegistry) resolve(h Handle) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h]
	return e, ok
}

func (r *handleRegistry) unregister(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, h)
}

// ResolveTensor returns the live tensor behind a handle, or ok=false if the
// handle is stale or belongs to another entity kind.
func ResolveTensor(h Handle) (*Tensor, bool) {
	e, ok := registry.resolve(h)
	if !ok {
		return nil, false
	}
	t, ok := e.(*Tensor)
	return t, ok
}

// ResolveImage returns the live image behind a handle, or ok=false.
func ResolveImage(h Handle) (*Image, bool) {
	e, ok := registry.resolve(h)
	if !ok {
		return nil, false
	}
	img, ok := e.(*Image)
	return img, ok
}

// ResolveImageBatch returns the live batch behind a handle, or ok=false.
func ResolveImageBatch(h Handle) (*ImageBatchVarShape, bool) {
	e, ok := registry.resolve(h)
	if !ok {
		return nil, false
	}
	b, ok := e.(*ImageBatchVarShape)
	return b, ok
}
