package cache

import (
	"errors"
	"fmt"

	"github.com/epsi95/tiercache/policy"
	"github.com/epsi95/tiercache/policy/lru"
)

// cache binds one Storage and one eviction policy. It is the only
// component permitted to mutate either; keeping the two in lockstep is
// what guarantees a victim exists whenever the storage reports full.
type cache[K comparable, V any] struct {
	storage Storage[K, V]
	policy  policy.Policy[K]
	metrics Metrics
}

// New constructs a Cache with the provided Options.
// Defaults:
//   - nil Storage => MapStorage with Options.Capacity
//   - nil Policy  => LRU
//   - nil Metrics => NoopMetrics
//
// The returned Cache is strictly single-threaded: every operation runs
// to completion before the next begins, and nothing mutates the storage
// or the policy outside the dynamic extent of a Put/Get call.
func New[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.Storage == nil && opt.Capacity == 0 {
		panic("cache: Capacity must be set when no Storage is provided")
	}
	if opt.Storage == nil {
		opt.Storage = NewMapStorage[K, V](opt.Capacity)
	}
	if opt.Policy == nil {
		opt.Policy = lru.New[K]()
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &cache[K, V]{
		storage: opt.Storage,
		policy:  opt.Policy,
		metrics: opt.Metrics,
	}
}

// Put inserts or updates k→v. While the storage reports full, the policy
// selects a victim, the victim is removed, and the insert is retried.
// Under the lockstep invariant a single retry always succeeds; the loop
// runs dry only when a misbehaving Storage/Policy pair (a zero-capacity
// storage is the canonical case) leaves the policy with nothing to evict,
// and then policy.ErrEmpty escapes as a fatal condition.
func (c *cache[K, V]) Put(k K, v V) error {
	for {
		err := c.storage.Put(k, v)
		if err == nil {
			c.policy.KeyAccessed(k)
			return nil
		}
		if !errors.Is(err, ErrStorageFull) {
			return err
		}
		victim, verr := c.policy.KeyToRemove()
		if verr != nil {
			return verr
		}
		if rerr := c.storage.Remove(victim); rerr != nil {
			return fmt.Errorf("cache: removing victim: %w", rerr)
		}
		c.metrics.Evict()
	}
}

// Get returns the value for k or ErrNotFound.
// Reads deliberately do not report the access to the policy: only writes
// promote a key, so repeated reads of a hot key do not protect it from
// eviction. See the package doc.
func (c *cache[K, V]) Get(k K) (V, error) {
	v, err := c.storage.Get(k)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.metrics.Miss()
		}
		var zero V
		return zero, err
	}
	c.metrics.Hit()
	return v, nil
}
