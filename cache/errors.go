package cache

import "errors"

var (
	// ErrNotFound is returned by lookups and removals of an absent key.
	// In a level chain it is the terminal cache-miss signal: intermediate
	// levels recover from it by falling through, the last level lets it
	// reach the caller unchanged.
	ErrNotFound = errors.New("cache: key not found")

	// ErrStorageFull is returned by Storage.Put when the key is new and
	// the storage is at capacity. A Cache always recovers from it locally
	// via evict-and-retry; it never crosses the Cache boundary.
	ErrStorageFull = errors.New("cache: storage full")
)
