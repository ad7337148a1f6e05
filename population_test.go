package evostrat

import "testing"

func TestSharedPopulationAcquireRelease(t *testing.T) {
	p := newSharedPopulation([]string{"a", "b", "c"})
	if p.Len() != 3 {
		t.Fatalf("expected length 3, got %d", p.Len())
	}
	v, err := p.Get(1)
	if err != nil || v != "b" {
		t.Fatalf("Get(1) = %q, %v", v, err)
	}
	if _, err := p.Get(3); err == nil {
		t.Fatal("expected an out-of-range error")
	}

	h1 := p.acquire()
	h2 := p.acquire()
	if p.refCount() != 2 {
		t.Fatalf("expected refcount 2, got %d", p.refCount())
	}
	h1.release()
	if p.refCount() != 1 {
		t.Fatalf("expected refcount 1, got %d", p.refCount())
	}
	h2.release()
	if p.refCount() != 0 {
		t.Fatalf("expected refcount 0, got %d", p.refCount())
	}
}
