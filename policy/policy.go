// Package policy defines the eviction policy contract used by the cache.
package policy

// Policy tracks access recency for a set of keys and elects eviction
// victims. The cache orchestrator decides *when* to evict; the policy
// decides *whom*.
//
// The tracked key set is exactly the set registered via OnAccess minus
// the keys surrendered via Evict or forgotten via Remove.
//
// Concurrency: implementations are not safe for concurrent use; the
// cache serializes all calls (see cache.Locked for a locking wrapper).
type Policy interface {
	// OnAccess records that key has just been read or written.
	// A tracked key is promoted to the most-recent position; an
	// unknown key is inserted at the most-recent position.
	OnAccess(key string)

	// Evict removes and returns the policy's chosen victim.
	// The second result is false when the policy tracks nothing.
	Evict() (string, bool)

	// Remove forgets key without electing it as a victim.
	// No-op for untracked keys.
	Remove(key string)

	// Len reports the number of tracked keys.
	Len() int
}
