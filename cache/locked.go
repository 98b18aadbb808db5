package cache

import "sync"

// locked serializes every public operation of the wrapped cache under a
// single exclusive lock. Each call touches storage and policy a bounded
// number of times and retains no references, so one mutex around the
// orchestrator is sufficient for safe sharing across goroutines.
type locked struct {
	mu sync.Mutex
	c  Cache
}

// Locked wraps c so that all public operations are mutually exclusive.
func Locked(c Cache) Cache { return &locked{c: c} }

func (l *locked) Get(k string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Get(k)
}

func (l *locked) Put(k, v string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Put(k, v)
}

func (l *locked) Contains(k string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Contains(k)
}

func (l *locked) Remove(k string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Remove(k)
}

func (l *locked) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Len()
}
