package cache

// Cache is a fixed-capacity in-memory key/value cache with a pluggable
// eviction policy (LRU by default).
//
// Methods are not safe for concurrent use; wrap with Locked to share a
// cache across goroutines. Typical complexity for operations is
// amortized O(1): a map lookup plus constant-time list adjustments.
type Cache interface {
	// Get returns the value for k and a boolean flag indicating presence.
	// On hit, the entry is promoted according to the active policy.
	// The empty string is a legal value; check the flag, not the value.
	Get(k string) (string, bool)

	// Put inserts or updates k→v, promoting the entry according to the
	// active policy. Inserting a new key into a full cache first evicts
	// the policy's victim, so the capacity bound holds at all times.
	Put(k, v string)

	// Contains reports whether k is present without promoting it.
	Contains(k string) bool

	// Remove deletes k if present and returns true on success.
	Remove(k string) bool

	// Len returns the number of resident entries.
	Len() int
}
