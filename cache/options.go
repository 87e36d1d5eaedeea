package cache

import "github.com/epsi95/tiercache/policy"

// Options configures the cache behavior. Zero values are safe;
// sane defaults are applied in New():
//   - nil Storage => MapStorage with Options.Capacity
//   - nil Policy  => LRU
//   - nil Metrics => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry limit for the default MapStorage when
	// Storage is nil. Use Unbounded (any negative value) for no limit.
	// Ignored when a Storage is supplied.
	Capacity int

	// Storage is the backing container; nil => MapStorage.
	Storage Storage[K, V]

	// Policy selects eviction victims; nil => LRU.
	// A Storage/Policy pair must only ever be mutated through the Cache
	// that owns them, or the lockstep invariant breaks.
	Policy policy.Policy[K]

	// Metrics receives hit/miss/evict signals; nil => NoopMetrics.
	Metrics Metrics
}
