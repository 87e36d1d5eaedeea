// Package fifo implements first-in-first-out eviction.
//
// FIFO ignores re-access: a key's eviction rank is fixed at first
// admission, so a hot key ages out exactly like a cold one. It is mainly
// a second witness that the policy contract is strategy-agnostic.
package fifo

import "github.com/epsi95/tiercache/policy"

// FIFO tracks admission order in a queue with a membership set.
type FIFO[K comparable] struct {
	queue []K
	seen  map[K]struct{}
}

// New returns an empty FIFO policy.
func New[K comparable]() *FIFO[K] {
	return &FIFO[K]{seen: make(map[K]struct{})}
}

// KeyAccessed admits k on first sight; later accesses do not re-rank it.
func (p *FIFO[K]) KeyAccessed(k K) {
	if _, ok := p.seen[k]; ok {
		return
	}
	p.seen[k] = struct{}{}
	p.queue = append(p.queue, k)
}

// KeyToRemove pops the oldest admitted key.
func (p *FIFO[K]) KeyToRemove() (K, error) {
	if len(p.queue) == 0 {
		var zero K
		return zero, policy.ErrEmpty
	}
	k := p.queue[0]
	p.queue = p.queue[1:]
	delete(p.seen, k)
	return k, nil
}

// Len returns the number of tracked keys.
func (p *FIFO[K]) Len() int { return len(p.queue) }

var _ policy.Policy[string] = (*FIFO[string])(nil)
