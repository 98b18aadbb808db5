package cache

import (
	"github.com/phuslu/log"

	"cachefind/policy"
	"cachefind/policy/lru"
)

// cache glues a Storage and a Policy. It owns both outright and keeps
// their key sets identical across every public operation.
type cache struct {
	store Storage
	pol   policy.Policy
	opt   Options
	log   log.Logger
}

// New constructs a cache with the provided Options.
// Defaults:
//   - nil Storage  -> in-memory storage bounded at opt.Capacity
//   - nil Policy   -> LRU
//   - nil Metrics  -> NoopMetrics
//
// Returns ErrInvalidCapacity when the default storage is requested with
// a non-positive Capacity.
func New(opt Options) (Cache, error) {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = lru.New()
	}
	if opt.Storage == nil {
		st, err := NewMemoryStorage(opt.Capacity)
		if err != nil {
			return nil, err
		}
		opt.Storage = st
	}

	c := &cache{
		store: opt.Storage,
		pol:   opt.Policy,
		opt:   opt,
	}
	if opt.Logger != nil {
		c.log = *opt.Logger
	} else {
		c.log = log.Logger{Level: log.PanicLevel} // silent
	}
	return c, nil
}

// Get returns the value for k and promotes the entry on a hit.
// Membership is decided by Contains, never by comparing values, so an
// empty stored value is indistinguishable from any other legal value.
func (c *cache) Get(k string) (string, bool) {
	if !c.store.Contains(k) {
		c.opt.Metrics.Miss()
		return "", false
	}
	v, _ := c.store.Get(k)
	c.pol.OnAccess(k)
	c.opt.Metrics.Hit()
	return v, true
}

// Put inserts or updates k→v. A new key entering a full cache evicts
// the policy's victim first, so the capacity bound is never exceeded.
// The recency update follows the storage write.
func (c *cache) Put(k, v string) {
	if !c.store.Contains(k) && c.store.IsFull() {
		c.evict()
	}
	c.store.Put(k, v)
	c.pol.OnAccess(k)
	c.opt.Metrics.Size(c.store.Len())
}

// Contains reports presence without touching recency.
func (c *cache) Contains(k string) bool { return c.store.Contains(k) }

// Remove deletes k from both storage and policy, preserving the
// key-set invariant. Returns false if k was absent.
func (c *cache) Remove(k string) bool {
	if !c.store.Contains(k) {
		return false
	}
	c.store.Remove(k)
	c.pol.Remove(k)
	c.opt.Metrics.Size(c.store.Len())
	return true
}

// Len returns the number of resident entries.
func (c *cache) Len() int { return c.store.Len() }

// evict removes the policy's victim from storage and notifies
// metrics/callbacks. Reaching an empty policy here would mean the
// storage and policy key sets diverged; that is a programming error,
// so the miss is simply logged.
func (c *cache) evict() {
	victim, ok := c.pol.Evict()
	if !ok {
		c.log.Error().Msg("evict requested on empty policy")
		return
	}
	val, _ := c.store.Get(victim)
	c.store.Remove(victim)
	c.opt.Metrics.Evict()
	c.log.Debug().Str("key", victim).Msg("evicted")
	if cb := c.opt.OnEvict; cb != nil {
		cb(victim, val)
	}
}
