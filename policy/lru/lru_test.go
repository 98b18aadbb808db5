package lru

import "testing"

// Untouched keys are evicted in insertion order (oldest first).
func TestLRU_EvictInsertionOrder(t *testing.T) {
	t.Parallel()

	p := New()
	p.OnAccess("a")
	p.OnAccess("b")
	p.OnAccess("c")

	if p.Len() != 3 {
		t.Fatalf("Len want 3, got %d", p.Len())
	}
	for _, want := range []string{"a", "b", "c"} {
		k, ok := p.Evict()
		if !ok || k != want {
			t.Fatalf("Evict want %q, got %q ok=%v", want, k, ok)
		}
	}
	if _, ok := p.Evict(); ok {
		t.Fatal("Evict on empty policy must report false")
	}
}

// Re-accessing a key promotes it to MRU, changing the next victim.
func TestLRU_OnAccessPromotes(t *testing.T) {
	t.Parallel()

	p := New()
	p.OnAccess("a")
	p.OnAccess("b")
	p.OnAccess("a") // a becomes MRU, b is now LRU

	if k, ok := p.Evict(); !ok || k != "b" {
		t.Fatalf("victim want b, got %q ok=%v", k, ok)
	}
	if k, ok := p.Evict(); !ok || k != "a" {
		t.Fatalf("victim want a, got %q ok=%v", k, ok)
	}
}

// Repeated OnAccess for the same key must not duplicate it.
func TestLRU_NoDuplicateTracking(t *testing.T) {
	t.Parallel()

	p := New()
	p.OnAccess("k")
	p.OnAccess("k")
	p.OnAccess("k")

	if p.Len() != 1 {
		t.Fatalf("Len want 1, got %d", p.Len())
	}
	if k, ok := p.Evict(); !ok || k != "k" {
		t.Fatalf("Evict want k, got %q ok=%v", k, ok)
	}
	if p.Len() != 0 {
		t.Fatalf("Len want 0 after eviction, got %d", p.Len())
	}
}

// Remove forgets a key anywhere in the order without electing it.
func TestLRU_Remove(t *testing.T) {
	t.Parallel()

	p := New()
	p.OnAccess("a")
	p.OnAccess("b")
	p.OnAccess("c")

	p.Remove("b")        // middle
	p.Remove("missing")  // no-op
	if p.Len() != 2 {
		t.Fatalf("Len want 2, got %d", p.Len())
	}

	if k, ok := p.Evict(); !ok || k != "a" {
		t.Fatalf("victim want a, got %q ok=%v", k, ok)
	}
	if k, ok := p.Evict(); !ok || k != "c" {
		t.Fatalf("victim want c, got %q ok=%v", k, ok)
	}
}

// Removing head and tail keeps the list consistent.
func TestLRU_RemoveEnds(t *testing.T) {
	t.Parallel()

	p := New()
	p.OnAccess("a")
	p.OnAccess("b")
	p.OnAccess("c")

	p.Remove("c") // MRU end
	p.Remove("a") // LRU end

	if k, ok := p.Evict(); !ok || k != "b" {
		t.Fatalf("victim want b, got %q ok=%v", k, ok)
	}
	if _, ok := p.Evict(); ok {
		t.Fatal("policy must be empty")
	}

	// Re-insertion after draining must still work.
	p.OnAccess("d")
	if k, ok := p.Evict(); !ok || k != "d" {
		t.Fatalf("victim want d, got %q ok=%v", k, ok)
	}
}
