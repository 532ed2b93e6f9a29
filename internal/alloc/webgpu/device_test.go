package webgpu

import (
	"testing"

	"github.com/lumen-cv/lumen/internal/alloc"
)

func TestNew(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	defer a.Release()

	if a.Kind() != alloc.DeviceMem {
		t.Errorf("Kind = %v, want DeviceMem", a.Kind())
	}
}

func TestAllocateDeallocate(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Skip("WebGPU not available on this system")
	}
	defer a.Release()

	buf, err := a.Allocate(1000, 256)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	// Sizes are rounded up to the copy alignment.
	if buf.Size < 1000 || buf.Size%copyAlignment != 0 {
		t.Errorf("buffer size = %d, want >= 1000 and 4-byte aligned", buf.Size)
	}
	if buf.Kind != alloc.DeviceMem {
		t.Errorf("buffer kind = %v, want DeviceMem", buf.Kind)
	}
	if buf.DeviceHandle() == nil {
		t.Error("device buffer should carry a device handle")
	}
	if buf.Bytes() != nil {
		t.Error("device buffer must not expose host bytes")
	}

	active, live, _ := a.Stats()
	if active != 1 || live != buf.Size {
		t.Errorf("stats = (%d, %d), want (1, %d)", active, live, buf.Size)
	}

	a.Deallocate(buf)

	active, live, _ = a.Stats()
	if active != 0 || live != 0 {
		t.Errorf("stats after deallocate = (%d, %d), want (0, 0)", active, live)
	}
}

func TestAllocateInvalid(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Skip("WebGPU not available on this system")
	}
	defer a.Release()

	if _, err := a.Allocate(0, 256); err == nil {
		t.Error("Allocate(0) should fail")
	}
	if _, err := a.Allocate(16, 3); err == nil {
		t.Error("Allocate with non-power-of-two alignment should fail")
	}
}

func TestPoolReuse(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Skip("WebGPU not available on this system")
	}
	defer a.Release()

	buf, err := a.Allocate(2048, 256)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	a.Deallocate(buf)

	// Second allocation of the same size should come from the pool.
	buf2, err := a.Allocate(2048, 256)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	defer a.Deallocate(buf2)

	hits, _ := a.pool.stats()
	if hits == 0 {
		t.Error("expected a pool hit on same-size reallocation")
	}
}
