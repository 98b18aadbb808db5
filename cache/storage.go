package cache

import "errors"

// ErrInvalidCapacity is returned when a bounded storage is constructed
// with a non-positive capacity.
var ErrInvalidCapacity = errors.New("cache: capacity must be > 0")

// Storage is a bounded key/value mapping. It knows nothing about
// recency; ordering is the policy's job and eviction is the
// orchestrator's job (Put never evicts).
//
// The empty string is a legal stored value. Presence is reported via
// the boolean results of Get/Contains, never by comparing values.
type Storage interface {
	// Get returns the stored value and a presence flag.
	// It has no recency side effects.
	Get(key string) (string, bool)

	// Put associates value with key, overwriting any prior value.
	// The caller is responsible for ensuring room beforehand.
	Put(key, value string)

	// Remove deletes the mapping for key; no-op if absent.
	Remove(key string)

	// Contains reports whether key is currently mapped.
	Contains(key string) bool

	// IsFull reports whether the current size has reached capacity.
	IsFull() bool

	// Len reports the number of stored entries.
	Len() int
}

// memoryStorage is a map-backed Storage. All operations are O(1) expected.
type memoryStorage struct {
	m        map[string]string
	capacity int
}

// NewMemoryStorage returns an in-memory Storage bounded at capacity
// entries. Capacity is immutable for the storage's lifetime.
func NewMemoryStorage(capacity int) (Storage, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &memoryStorage{
		m:        make(map[string]string, capacity),
		capacity: capacity,
	}, nil
}

func (s *memoryStorage) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *memoryStorage) Put(key, value string) { s.m[key] = value }

func (s *memoryStorage) Remove(key string) { delete(s.m, key) }

func (s *memoryStorage) Contains(key string) bool {
	_, ok := s.m[key]
	return ok
}

func (s *memoryStorage) IsFull() bool { return len(s.m) >= s.capacity }

func (s *memoryStorage) Len() int { return len(s.m) }
