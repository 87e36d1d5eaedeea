package tier

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/epsi95/tiercache/cache"
)

// CacheLevel is the capability one chain stage exposes: a timed read and
// a timed write. Level is the provided implementation; alternative stages
// (a remote tier, a null tail) satisfy the same contract.
type CacheLevel[K comparable, V any] interface {
	Get(k K) (ReadResponse[V], error)
	Put(k K, v V) (WriteResponse, error)
}

// Level wraps one Cache with a diagnostic name and an optional link to
// the next (slower, larger) level. The link is shared, not owned: the
// chain as a whole belongs to a Multilevel, while each level remains the
// exclusive source of mutations flowing into its own Cache.
type Level[K comparable, V any] struct {
	name  string
	cache cache.Cache[K, V]
	next  *Level[K, V]

	clock Clock
	log   logrus.FieldLogger
}

// LevelOptions carries the optional collaborators of a Level.
// Zero values are safe: nil Clock => time.Now, nil Logger => silent.
type LevelOptions struct {
	Clock  Clock
	Logger logrus.FieldLogger
}

// NewLevel wraps c as one cache level.
func NewLevel[K comparable, V any](name string, c cache.Cache[K, V], opt LevelOptions) *Level[K, V] {
	if c == nil {
		panic("tier: nil cache")
	}
	l := &Level[K, V]{name: name, cache: c, clock: opt.Clock, log: opt.Logger}
	if l.clock == nil {
		l.clock = systemClock{}
	}
	if l.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		l.log = silent
	}
	return l
}

// Name returns the diagnostic name.
func (l *Level[K, V]) Name() string { return l.name }

// Next returns the next (slower) level, or nil at the chain tail.
func (l *Level[K, V]) Next() *Level[K, V] { return l.next }

// Cache returns the level's own cache, for direct inspection of a single
// tier.
func (l *Level[K, V]) Cache() cache.Cache[K, V] { return l.cache }

// Get resolves k through this level. A local hit answers immediately.
// On a local miss the call falls through to the next level, backfills the
// local cache with the fetched value (which may evict locally), and
// reports elapsed time measured from entry into this level — downstream
// fetch and backfill included. A miss with no next level is the terminal
// miss: cache.ErrNotFound propagates to the caller unchanged.
func (l *Level[K, V]) Get(k K) (ReadResponse[V], error) {
	start := l.clock.NowUnixNano()

	v, err := l.cache.Get(k)
	if err == nil {
		return ReadResponse[V]{Value: v, Elapsed: l.since(start)}, nil
	}
	if !errors.Is(err, cache.ErrNotFound) || l.next == nil {
		return ReadResponse[V]{}, err
	}

	l.log.WithField("level", l.name).Debug("miss, falling through to next level")

	resp, err := l.next.Get(k)
	if err != nil {
		return ReadResponse[V]{}, err
	}
	if perr := l.cache.Put(k, resp.Value); perr != nil {
		return ReadResponse[V]{}, perr
	}
	return ReadResponse[V]{Value: resp.Value, Elapsed: l.since(start)}, nil
}

// Put writes k→v into the local cache and then, unconditionally, through
// to every further level (local-then-remote). Every tier ends up holding
// every written key, subject to its own eviction.
func (l *Level[K, V]) Put(k K, v V) (WriteResponse, error) {
	start := l.clock.NowUnixNano()

	if err := l.cache.Put(k, v); err != nil {
		return WriteResponse{}, err
	}
	if l.next != nil {
		if _, err := l.next.Put(k, v); err != nil {
			return WriteResponse{}, err
		}
	}
	return WriteResponse{Elapsed: l.since(start)}, nil
}

func (l *Level[K, V]) since(start int64) time.Duration {
	return time.Duration(l.clock.NowUnixNano() - start)
}

var _ CacheLevel[string, int] = (*Level[string, int])(nil)
