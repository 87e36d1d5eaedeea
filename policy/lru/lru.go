// Package lru implements the default least-recently-used eviction policy.
package lru

import "github.com/epsi95/tiercache/policy"

// none is the nil handle for arena links.
const none = -1

// node is one access record: the key plus prev/next arena handles.
// The head side of the list is most-recently-used.
type node[K comparable] struct {
	key  K
	prev int
	next int
}

// LRU is the classic O(1) construction: a key→record index plus a doubly
// linked recency list, so both contract methods run in constant time
// regardless of key count.
//
// The records live in an index-stable arena and link by integer handle
// rather than by pointer, which removes any possibility of a dangling
// reference when records are unlinked. Released slots are recycled
// through a free list.
type LRU[K comparable] struct {
	index map[K]int // key -> arena handle
	nodes []node[K]
	free  []int
	head  int // most-recently-used
	tail  int // least-recently-used
}

// New returns an empty LRU policy.
func New[K comparable]() *LRU[K] {
	return &LRU[K]{
		index: make(map[K]int),
		head:  none,
		tail:  none,
	}
}

// KeyAccessed makes k the most-recently-used key, admitting a new record
// if k is unseen.
func (p *LRU[K]) KeyAccessed(k K) {
	h, ok := p.index[k]
	if !ok {
		h = p.alloc(k)
		p.index[k] = h
	}
	p.moveToHead(h)
}

// KeyToRemove unlinks the least-recently-used record and returns its key.
func (p *LRU[K]) KeyToRemove() (K, error) {
	if p.tail == none {
		var zero K
		return zero, policy.ErrEmpty
	}
	h := p.tail
	k := p.nodes[h].key
	if p.head == h {
		p.head, p.tail = none, none
	} else {
		prev := p.nodes[h].prev
		p.nodes[prev].next = none
		p.tail = prev
	}
	delete(p.index, k)
	p.release(h)
	return k, nil
}

// Len returns the number of tracked keys.
func (p *LRU[K]) Len() int { return len(p.index) }

// alloc takes a slot from the free list or grows the arena.
func (p *LRU[K]) alloc(k K) int {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		p.nodes[h] = node[K]{key: k, prev: none, next: none}
		return h
	}
	p.nodes = append(p.nodes, node[K]{key: k, prev: none, next: none})
	return len(p.nodes) - 1
}

// release zeroes the slot (so the arena does not pin the key's referents)
// and returns it to the free list.
func (p *LRU[K]) release(h int) {
	p.nodes[h] = node[K]{prev: none, next: none}
	p.free = append(p.free, h)
}

// moveToHead promotes h to most-recently-used.
//
// Cases, in order: already the head is a no-op; an empty list takes h as
// head=tail; the tail is unlinked from the end first; an interior record
// is unlinked by connecting its neighbours; a detached record (both links
// none) is spliced in before the current head directly.
func (p *LRU[K]) moveToHead(h int) {
	if h == p.head {
		return
	}
	if p.head == none {
		p.head, p.tail = h, h
		return
	}
	n := &p.nodes[h]
	switch {
	case n.prev == none && n.next == none:
		// detached, nothing to unlink
	case n.next == none:
		// tail: unlink from the end
		p.nodes[n.prev].next = none
		p.tail = n.prev
		n.prev = none
	default:
		// interior: connect the neighbours to each other
		p.nodes[n.prev].next = n.next
		p.nodes[n.next].prev = n.prev
		n.prev, n.next = none, none
	}
	n.next = p.head
	p.nodes[p.head].prev = h
	p.head = h
}

var _ policy.Policy[string] = (*LRU[string])(nil)
