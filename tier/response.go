package tier

import "time"

// ReadResponse is the outcome of one read: the value plus how long the
// whole lookup took, including any downstream fetch and local backfill.
// Responses are immutable once created; the Multilevel history queues
// consume them.
type ReadResponse[V any] struct {
	Value   V
	Elapsed time.Duration
}

// WriteResponse is the outcome of one write.
type WriteResponse struct {
	Elapsed time.Duration
}

// Clock provides time in UnixNano; useful for deterministic tests.
type Clock interface{ NowUnixNano() int64 }

type systemClock struct{}

func (systemClock) NowUnixNano() int64 { return time.Now().UnixNano() }
