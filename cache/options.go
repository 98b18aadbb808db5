package cache

import (
	"github.com/phuslu/log"

	"cachefind/policy"
)

// Options configures the cache behavior. Zero values are safe;
// sane defaults are applied in New():
//   - nil Storage  => in-memory storage bounded at Capacity
//   - nil Policy   => LRU
//   - nil Metrics  => NoopMetrics
type Options struct {
	// Capacity is the entry count limit of the default storage.
	// Ignored when a custom Storage is supplied.
	Capacity int

	// Storage holds the entries. Nil => NewMemoryStorage(Capacity).
	Storage Storage

	// Policy is a pluggable eviction policy; nil => LRU by default.
	Policy policy.Policy

	// OnEvict is called with the victim's key and value after every
	// capacity eviction (not after explicit Remove).
	OnEvict func(key, value string)

	// Metrics receives Hit/Miss/Evict/Size signals.
	Metrics Metrics

	// Logger, when non-nil, receives debug records for evictions.
	Logger *log.Logger
}
