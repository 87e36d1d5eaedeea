package tier

import (
	"errors"

	"github.com/epsi95/tiercache/internal/ring"
)

// ErrNoLevels is returned by Multilevel.Get and Put before any level has
// been added to the chain.
var ErrNoLevels = errors.New("tier: chain has no levels")

// DefaultHistory is the per-direction response history depth used when
// Options.History is zero.
const DefaultHistory = 5

// Options configures a Multilevel.
type Options struct {
	// History bounds the read and write response histories.
	// Zero means DefaultHistory.
	History int
}

// Multilevel chains cache levels into one logical cache with increasing
// latency and capacity per tier. It owns the chain head plus a bounded
// most-recent-first history of read and write responses.
//
// Like everything in this module, a Multilevel is single-threaded:
// operations run synchronously to completion with no internal locking.
type Multilevel[K comparable, V any] struct {
	front  *Level[K, V]
	reads  *ring.Buffer[ReadResponse[V]]
	writes *ring.Buffer[WriteResponse]
}

// NewMultilevel returns an empty chain.
func NewMultilevel[K comparable, V any](opt Options) *Multilevel[K, V] {
	h := opt.History
	if h <= 0 {
		h = DefaultHistory
	}
	return &Multilevel[K, V]{
		reads:  ring.New[ReadResponse[V]](h),
		writes: ring.New[WriteResponse](h),
	}
}

// AddLevel appends lv to the chain. The first added level becomes the
// front (fastest) one; later levels attach behind the current tail, found
// by walking the chain — no tail shortcut is kept.
func (m *Multilevel[K, V]) AddLevel(lv *Level[K, V]) {
	if m.front == nil {
		m.front = lv
		return
	}
	cur := m.front
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = lv
}

// Front returns the front level, or nil for an empty chain.
func (m *Multilevel[K, V]) Front() *Level[K, V] { return m.front }

// Get resolves k through the chain and returns only the value; the timed
// response is an internal observability artifact and lands in the read
// history. A terminal cache.ErrNotFound propagates unchanged and records
// nothing — a miss at the top of the chain is a definitive result, never
// retried here.
func (m *Multilevel[K, V]) Get(k K) (V, error) {
	if m.front == nil {
		var zero V
		return zero, ErrNoLevels
	}
	resp, err := m.front.Get(k)
	if err != nil {
		var zero V
		return zero, err
	}
	m.reads.Push(resp)
	return resp.Value, nil
}

// Put writes k→v through every level in the chain and records the timed
// response in the write history.
func (m *Multilevel[K, V]) Put(k K, v V) error {
	if m.front == nil {
		return ErrNoLevels
	}
	resp, err := m.front.Put(k, v)
	if err != nil {
		return err
	}
	m.writes.Push(resp)
	return nil
}

// ReadHistory returns the most recent read responses, newest first.
// At most Options.History entries are kept; older ones are dropped
// silently.
func (m *Multilevel[K, V]) ReadHistory() []ReadResponse[V] {
	return m.reads.Snapshot()
}

// WriteHistory returns the most recent write responses, newest first.
func (m *Multilevel[K, V]) WriteHistory() []WriteResponse {
	return m.writes.Snapshot()
}
