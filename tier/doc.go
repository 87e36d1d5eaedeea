// Package tier chains independent caches into one logical multi-level
// cache: read-through on miss with promotion into faster tiers, and
// unconditional write-through into every tier.
//
// A Level wraps one cache.Cache with a name and an optional link to the
// next (slower, larger) level. Get tries the local cache first; on a
// miss it falls through, backfills the fetched value locally, and
// reports the total elapsed time. Put writes locally and then through
// the rest of the chain. Only a miss at the last level surfaces to the
// caller, as cache.ErrNotFound.
//
// A Multilevel owns the chain and keeps the last few timed responses per
// direction as a bounded, most-recent-first history.
//
//	m := tier.NewMultilevel[string, int](tier.Options{})
//	m.AddLevel(tier.NewLevel("l1", cache.New[string, int](cache.Options[string, int]{Capacity: 8}), tier.LevelOptions{}))
//	m.AddLevel(tier.NewLevel("l2", cache.New[string, int](cache.Options[string, int]{Capacity: 64}), tier.LevelOptions{}))
//
//	_ = m.Put("a", 1) // lands in l1 and l2
//	v, err := m.Get("a")
//
// Note that recency inside a level is write-only: a local hit does not
// promote the key in that level's eviction policy, and a read that is
// answered by a deeper level promotes the key into faster tiers only via
// the backfill Put. See the cache package doc.
package tier
