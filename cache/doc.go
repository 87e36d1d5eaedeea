// Package cache provides a generic, policy-pluggable, capacity-bounded
// key/value cache: one Storage for the entries, one eviction policy for
// the access order, and a Cache that keeps the two in lockstep.
//
// Design
//
//   - Storage: a plain container with Put/Get/Remove and a fixed
//     capacity. It never evicts; a Put of a new key into a full storage
//     fails with ErrStorageFull. MapStorage is the hashmap-backed
//     default, and alternative backends plug in behind the Storage
//     interface.
//
//   - Policy: the policy package defines the two-method eviction
//     contract (KeyAccessed / KeyToRemove). LRU is the default; FIFO is
//     provided as a second strategy, and others (LFU, random) can be
//     added without touching the cache.
//
//   - Cache: binds one Storage and one policy instance and is the only
//     component allowed to mutate either. On ErrStorageFull it asks the
//     policy for a victim, removes it, and retries the insert. The set
//     of keys the policy tracks must always equal the set of keys
//     resident in the storage; that lockstep is what makes the
//     evict-and-retry loop terminate after a single pass.
//
//   - Recency is write-only: Cache.Get does not report the access to
//     the policy, so under an LRU policy only Puts move a key toward
//     the head. This mirrors the behavior this package was ported from
//     and is relied upon by the tier package; callers wanting
//     read-promotes semantics can report reads to the policy they
//     supplied.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict signals.
//     NoopMetrics is used by default; plug the metrics/prom adapter to
//     export Prometheus counters.
//
// Concurrency
//
// Everything in this package is single-threaded by design. Operations
// run synchronously to completion and there is no internal locking. If
// callers share a Cache across goroutines they must serialize storage
// and policy mutation together — the two form one logical transaction.
//
// Basic usage
//
//	c := cache.New[string, int](cache.Options[string, int]{Capacity: 5})
//	_ = c.Put("a", 1)
//	v, err := c.Get("a") // 1, nil
//	_, err = c.Get("nope") // cache.ErrNotFound
//
// With an explicit storage and policy
//
//	c := cache.New[string, int](cache.Options[string, int]{
//	    Storage: cache.NewMapStorage[string, int](100),
//	    Policy:  fifo.New[string](),
//	})
package cache
