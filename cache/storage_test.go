package cache

import (
	"errors"
	"testing"
)

func TestMapStorage_PutGetRemove(t *testing.T) {
	t.Parallel()

	s := NewMapStorage[string, int](2)

	if err := s.Put("a", 1); err != nil {
		t.Fatalf("Put a: %v", err)
	}
	if v, err := s.Get("a"); err != nil || v != 1 {
		t.Fatalf("Get a: want 1, got %v err=%v", v, err)
	}
	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove a: %v", err)
	}
	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Remove: want ErrNotFound, got %v", err)
	}
	if err := s.Remove("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove absent: want ErrNotFound, got %v", err)
	}
}

// A new key into a full storage fails; overwriting an existing key never
// fails on capacity grounds.
func TestMapStorage_FullRejectsOnlyNewKeys(t *testing.T) {
	t.Parallel()

	s := NewMapStorage[string, int](2)
	if err := s.Put("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("b", 2); err != nil {
		t.Fatal(err)
	}

	if err := s.Put("c", 3); !errors.Is(err, ErrStorageFull) {
		t.Fatalf("Put c into full storage: want ErrStorageFull, got %v", err)
	}
	if err := s.Put("a", 11); err != nil {
		t.Fatalf("overwrite a in full storage: %v", err)
	}
	if v, _ := s.Get("a"); v != 11 {
		t.Fatalf("a: want 11, got %v", v)
	}
	if s.Len() != 2 {
		t.Fatalf("Len: want 2, got %d", s.Len())
	}
}

func TestMapStorage_ZeroCapacityRejectsEverything(t *testing.T) {
	t.Parallel()

	s := NewMapStorage[string, int](0)
	if err := s.Put("a", 1); !errors.Is(err, ErrStorageFull) {
		t.Fatalf("want ErrStorageFull, got %v", err)
	}
}

func TestMapStorage_Unbounded(t *testing.T) {
	t.Parallel()

	s := NewMapStorage[int, int](Unbounded)
	for i := 0; i < 1000; i++ {
		if err := s.Put(i, i); err != nil {
			t.Fatalf("Put %d: %v", i, err)
		}
	}
	if s.Len() != 1000 {
		t.Fatalf("Len: want 1000, got %d", s.Len())
	}
}
