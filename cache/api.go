package cache

// Storage is a capacity-bounded key/value container. It does not evict:
// a Put that would exceed capacity fails with ErrStorageFull, and freeing
// space is the owning Cache's job. Alternative backends (disk, remote)
// must satisfy the same three operations and the same capacity contract.
//
// Implementations are not required to be safe for concurrent use; the
// owning Cache serializes access.
type Storage[K comparable, V any] interface {
	// Put inserts or overwrites k→v. Inserting a new key into a full
	// storage fails with ErrStorageFull; overwriting an existing key
	// never fails on capacity grounds.
	Put(k K, v V) error

	// Get returns the value for k, or ErrNotFound if absent.
	Get(k K) (V, error)

	// Remove deletes the entry for k, or returns ErrNotFound if absent.
	Remove(k K) error
}

// Cache binds one Storage and one eviction policy. On insert-time
// capacity overflow it evicts the policy's victim and retries, so Put
// never surfaces ErrStorageFull to callers.
//
// Typical complexity for both operations is O(1): a map access plus a
// constant amount of policy bookkeeping.
type Cache[K comparable, V any] interface {
	// Put inserts or updates k→v, evicting via the policy if the
	// storage is full, and records the access with the policy.
	Put(k K, v V) error

	// Get returns the value for k or ErrNotFound. Reads do not update
	// recency; only writes promote a key (see the package doc).
	Get(k K) (V, error)
}
