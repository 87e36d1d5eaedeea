package cache

// Unbounded disables the capacity limit of a MapStorage.
// Any negative capacity behaves the same way.
const Unbounded = -1

// MapStorage is the default hashmap-backed Storage.
type MapStorage[K comparable, V any] struct {
	capacity int
	db       map[K]V
}

// NewMapStorage returns an empty MapStorage holding at most capacity
// entries. Pass Unbounded for no limit. A capacity of zero is legal and
// rejects every insert; a Cache built on top of it fails each Put with
// policy.ErrEmpty once its policy runs dry.
func NewMapStorage[K comparable, V any](capacity int) *MapStorage[K, V] {
	return &MapStorage[K, V]{
		capacity: capacity,
		db:       make(map[K]V),
	}
}

// Put inserts or overwrites k→v. A new key is rejected with
// ErrStorageFull when the storage is at capacity.
func (s *MapStorage[K, V]) Put(k K, v V) error {
	if _, ok := s.db[k]; !ok && s.capacity >= 0 && len(s.db) >= s.capacity {
		return ErrStorageFull
	}
	s.db[k] = v
	return nil
}

// Get returns the value for k or ErrNotFound.
func (s *MapStorage[K, V]) Get(k K) (V, error) {
	v, ok := s.db[k]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

// Remove deletes the entry for k or returns ErrNotFound.
func (s *MapStorage[K, V]) Remove(k K) error {
	if _, ok := s.db[k]; !ok {
		return ErrNotFound
	}
	delete(s.db, k)
	return nil
}

// Len returns the number of resident entries.
func (s *MapStorage[K, V]) Len() int { return len(s.db) }

var _ Storage[string, int] = (*MapStorage[string, int])(nil)
