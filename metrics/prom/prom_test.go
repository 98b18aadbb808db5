package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"cachefind/cache"
)

// Drive a real cache with the adapter plugged in and read the exported
// series back through a private registry.
func TestAdapter_ExportsCacheSignals(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a := New(reg, "cachefind", "test", nil)

	c, err := cache.New(cache.Options{Capacity: 2, Metrics: a})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Put("a", "1")
	c.Put("b", "2")
	c.Get("a")      // hit
	c.Get("nope")   // miss
	c.Put("c", "3") // eviction

	if got := testutil.ToFloat64(a.hits); got != 1 {
		t.Fatalf("hits want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.misses); got != 1 {
		t.Fatalf("misses want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.evicts); got != 1 {
		t.Fatalf("evictions want 1, got %v", got)
	}
	if got := testutil.ToFloat64(a.sizeEnt); got != 2 {
		t.Fatalf("size gauge want 2, got %v", got)
	}
}
