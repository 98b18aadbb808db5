// Package cache provides a fixed-capacity in-memory key/value cache
// with a pluggable eviction policy (LRU by default).
//
// Design
//
//   - Storage: a bounded map from key to value. It reports fullness and
//     membership but knows nothing about recency. See the Storage
//     interface; NewMemoryStorage is the default implementation.
//
//   - Policies: eviction is pluggable via the policy package. The
//     policy tracks access recency and names the next victim; LRU keeps
//     a doubly linked list plus a key index so every operation is O(1).
//     Alternative policies can be added without touching the cache.
//
//   - Orchestration: the cache owns one Storage and one Policy and
//     keeps their key sets identical. On overflow it asks the policy
//     for a victim and removes it from storage before inserting, so
//     the capacity bound holds at every observable instant.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; plug the prom adapter to export
//     Prometheus metrics.
//
//   - Callbacks: Options.OnEvict(k, v) is called for every capacity
//     eviction.
//
// Basic usage
//
//	c, err := cache.New(cache.Options{Capacity: 1024})
//	if err != nil {
//	    // non-positive capacity
//	}
//	c.Put("a", "1")
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// Thread-safety
//
// A Cache is single-threaded by design; no operation suspends and all
// calls run to completion synchronously. To share one across
// goroutines, wrap it:
//
//	c = cache.Locked(c)
package cache
