// Package policy defines the pluggable eviction policy contract used by
// the cache package. A policy tracks access order for keys and selects a
// victim on demand; it never touches the storage itself.
package policy

import "errors"

// ErrEmpty is returned by KeyToRemove when the policy tracks no keys.
// Seen through a Cache it means storage and policy bookkeeping have
// diverged; there is no well-defined recovery.
var ErrEmpty = errors.New("policy: no keys tracked")

// Policy is the two-method eviction contract. LRU is the default
// implementation; FIFO, LFU, random and friends satisfy the same
// interface.
//
// A policy instance belongs to exactly one Cache, which serializes all
// calls. Implementations are not safe for concurrent use.
type Policy[K comparable] interface {
	// KeyAccessed records that k was just read or written. An unseen
	// key is admitted and ranked most-recently-used (however the
	// strategy defines "used"); a known key is re-ranked per the
	// strategy.
	KeyAccessed(k K)

	// KeyToRemove selects the victim, removes it from the policy's own
	// tracking (the storage is untouched) and returns its key.
	// Returns ErrEmpty if no keys are tracked.
	KeyToRemove() (K, error)
}
