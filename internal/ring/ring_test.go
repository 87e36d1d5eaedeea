package ring

import "testing"

func TestBuffer_NewestFirst(t *testing.T) {
	t.Parallel()

	b := New[int](3)
	b.Push(1)
	b.Push(2)

	got := b.Snapshot()
	if len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("want [2 1], got %v", got)
	}
}

func TestBuffer_OverflowDropsOldest(t *testing.T) {
	t.Parallel()

	b := New[int](3)
	for i := 1; i <= 5; i++ {
		b.Push(i)
	}

	if b.Len() != 3 {
		t.Fatalf("Len: want 3, got %d", b.Len())
	}
	got := b.Snapshot()
	want := []int{5, 4, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestBuffer_Empty(t *testing.T) {
	t.Parallel()

	b := New[string](2)
	if b.Len() != 0 || len(b.Snapshot()) != 0 {
		t.Fatal("fresh buffer must be empty")
	}
	if b.Cap() != 2 {
		t.Fatalf("Cap: want 2, got %d", b.Cap())
	}
}

func TestBuffer_PanicsOnBadCapacity(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("New(0) must panic")
		}
	}()
	New[int](0)
}
