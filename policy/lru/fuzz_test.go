//go:build go1.18

package lru

import (
	"errors"
	"testing"

	"github.com/epsi95/tiercache/policy"
)

// modelLRU is a deliberately naive O(n) reference: a slice ordered from
// least to most recently used.
type modelLRU struct{ keys []byte }

func (m *modelLRU) accessed(k byte) {
	for i, have := range m.keys {
		if have == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	m.keys = append(m.keys, k)
}

func (m *modelLRU) remove() (byte, bool) {
	if len(m.keys) == 0 {
		return 0, false
	}
	k := m.keys[0]
	m.keys = m.keys[1:]
	return k, true
}

// Fuzz the arena LRU against the naive model. Each input byte is one
// operation: high bit set means KeyToRemove, otherwise KeyAccessed with
// the low bits as key. The tiny 16-key space forces heavy re-access and
// slot reuse, which is where list bookkeeping goes wrong.
func FuzzLRU_MatchesModel(f *testing.F) {
	f.Add([]byte{0, 1, 2, 0x80, 1, 0x80, 0x80, 0x80})
	f.Add([]byte{5, 5, 5, 0x80})
	f.Add([]byte{0x80})
	f.Add([]byte{0, 1, 2, 3, 1, 0, 0x80, 4, 0x80, 2, 0x80})

	f.Fuzz(func(t *testing.T, ops []byte) {
		p := New[byte]()
		m := &modelLRU{}

		for _, op := range ops {
			if op&0x80 != 0 {
				want, ok := m.remove()
				got, err := p.KeyToRemove()
				if !ok {
					if !errors.Is(err, policy.ErrEmpty) {
						t.Fatalf("empty: want ErrEmpty, got key=%v err=%v", got, err)
					}
					continue
				}
				if err != nil || got != want {
					t.Fatalf("KeyToRemove: want %v, got %v err=%v", want, got, err)
				}
			} else {
				k := op & 0x0f
				p.KeyAccessed(k)
				m.accessed(k)
			}
			if p.Len() != len(m.keys) {
				t.Fatalf("Len: want %d, got %d", len(m.keys), p.Len())
			}
		}

		// Drain both and compare the full eviction order.
		for {
			want, ok := m.remove()
			got, err := p.KeyToRemove()
			if !ok {
				if !errors.Is(err, policy.ErrEmpty) {
					t.Fatalf("drain: want ErrEmpty, got %v", err)
				}
				return
			}
			if err != nil || got != want {
				t.Fatalf("drain: want %v, got %v err=%v", want, got, err)
			}
		}
	})
}
