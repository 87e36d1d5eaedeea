package tier

import (
	"errors"
	"testing"

	"github.com/epsi95/tiercache/cache"
)

func TestMultilevel_EmptyChain(t *testing.T) {
	t.Parallel()

	m := NewMultilevel[string, int](Options{})
	if _, err := m.Get("a"); !errors.Is(err, ErrNoLevels) {
		t.Fatalf("Get: want ErrNoLevels, got %v", err)
	}
	if err := m.Put("a", 1); !errors.Is(err, ErrNoLevels) {
		t.Fatalf("Put: want ErrNoLevels, got %v", err)
	}
}

// The first added level becomes the front; later ones append behind the
// tail.
func TestMultilevel_AddLevelOrder(t *testing.T) {
	t.Parallel()

	m := NewMultilevel[string, int](Options{})
	for _, name := range []string{"l1", "l2", "l3"} {
		m.AddLevel(NewLevel(name, newCache(t, 4), LevelOptions{}))
	}

	var names []string
	for l := m.Front(); l != nil; l = l.Next() {
		names = append(names, l.Name())
	}
	want := []string{"l1", "l2", "l3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("chain order: want %v, got %v", want, names)
		}
	}
}

// A value present only in the back level is found, returned, and
// promoted into the front level.
func TestMultilevel_ReadThroughPromotes(t *testing.T) {
	t.Parallel()

	frontCache := newCache(t, 4)
	backCache := newCache(t, 4)

	m := NewMultilevel[string, int](Options{})
	m.AddLevel(NewLevel("l1", frontCache, LevelOptions{}))
	m.AddLevel(NewLevel("l2", backCache, LevelOptions{}))

	if err := backCache.Put("x", 7); err != nil {
		t.Fatal(err)
	}

	v, err := m.Get("x")
	if err != nil || v != 7 {
		t.Fatalf("Get x: want 7, got %v err=%v", v, err)
	}
	if got, err := frontCache.Get("x"); err != nil || got != 7 {
		t.Fatalf("x must be promoted into the front level, got %v err=%v", got, err)
	}
}

// A write lands in every level of the chain.
func TestMultilevel_WriteThroughReachesEveryLevel(t *testing.T) {
	t.Parallel()

	caches := []cache.Cache[string, int]{
		newCache(t, 4), newCache(t, 4), newCache(t, 4),
	}
	m := NewMultilevel[string, int](Options{})
	for i, name := range []string{"l1", "l2", "l3"} {
		m.AddLevel(NewLevel(name, caches[i], LevelOptions{}))
	}

	if err := m.Put("y", 9); err != nil {
		t.Fatal(err)
	}
	for i, c := range caches {
		if v, err := c.Get("y"); err != nil || v != 9 {
			t.Fatalf("level %d: want 9, got %v err=%v", i+1, v, err)
		}
	}
}

// A miss everywhere surfaces as cache.ErrNotFound and records nothing in
// the read history.
func TestMultilevel_TerminalMiss(t *testing.T) {
	t.Parallel()

	m := NewMultilevel[string, int](Options{})
	m.AddLevel(NewLevel("l1", newCache(t, 4), LevelOptions{}))
	m.AddLevel(NewLevel("l2", newCache(t, 4), LevelOptions{}))

	if _, err := m.Get("nope"); !errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if n := len(m.ReadHistory()); n != 0 {
		t.Fatalf("a terminal miss must record nothing, history has %d", n)
	}
}

// Histories are bounded and newest-first; the oldest entries drop
// silently.
func TestMultilevel_HistoryBoundedNewestFirst(t *testing.T) {
	t.Parallel()

	m := NewMultilevel[string, int](Options{History: 3})
	m.AddLevel(NewLevel("l1", newCache(t, 16), LevelOptions{}))

	for i := 0; i < 5; i++ {
		k := string(rune('a' + i))
		if err := m.Put(k, i); err != nil {
			t.Fatal(err)
		}
		if _, err := m.Get(k); err != nil {
			t.Fatal(err)
		}
	}

	if n := len(m.WriteHistory()); n != 3 {
		t.Fatalf("write history: want 3 entries, got %d", n)
	}
	reads := m.ReadHistory()
	if len(reads) != 3 {
		t.Fatalf("read history: want 3 entries, got %d", len(reads))
	}
	// Most recent reads were e=4, d=3, c=2.
	for i, want := range []int{4, 3, 2} {
		if reads[i].Value != want {
			t.Fatalf("read history[%d]: want %d, got %d", i, want, reads[i].Value)
		}
	}
}

func TestMultilevel_DefaultHistoryDepth(t *testing.T) {
	t.Parallel()

	m := NewMultilevel[string, int](Options{})
	m.AddLevel(NewLevel("l1", newCache(t, 16), LevelOptions{}))

	for i := 0; i < DefaultHistory+2; i++ {
		if err := m.Put(string(rune('a'+i)), i); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(m.WriteHistory()); n != DefaultHistory {
		t.Fatalf("want %d entries, got %d", DefaultHistory, n)
	}
}

// End-to-end: a three-tier chain with growing capacities. Writing six
// keys through a front tier of capacity five evicts the oldest key from
// the front only; reading it again hits the second tier and promotes it
// back into the front.
func TestMultilevel_ThreeTierScenario(t *testing.T) {
	t.Parallel()

	l1Cache := newCache(t, 5)
	l2Cache := newCache(t, 10)
	l3Cache := newCache(t, 20)

	m := NewMultilevel[string, int](Options{})
	m.AddLevel(NewLevel("l1", l1Cache, LevelOptions{}))
	m.AddLevel(NewLevel("l2", l2Cache, LevelOptions{}))
	m.AddLevel(NewLevel("l3", l3Cache, LevelOptions{}))

	for i, k := range []string{"a", "b", "c", "d", "e", "f"} {
		if err := m.Put(k, i); err != nil {
			t.Fatalf("Put %s: %v", k, err)
		}
	}

	// "a" was evicted from the front tier but survives deeper.
	if _, err := l1Cache.Get("a"); !errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("a must be evicted from l1, got err=%v", err)
	}
	for name, c := range map[string]cache.Cache[string, int]{"l2": l2Cache, "l3": l3Cache} {
		if v, err := c.Get("a"); err != nil || v != 0 {
			t.Fatalf("a must survive in %s, got %v err=%v", name, v, err)
		}
	}

	// The chain still resolves "a" and promotes it into the front tier.
	v, err := m.Get("a")
	if err != nil || v != 0 {
		t.Fatalf("Get a: want 0, got %v err=%v", v, err)
	}
	if got, err := l1Cache.Get("a"); err != nil || got != 0 {
		t.Fatalf("a must be promoted into l1, got %v err=%v", got, err)
	}
}
