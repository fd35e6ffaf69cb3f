// memory.go provides an in-memory Store for tests and throwaway sessions.
package store

// MemStore is a map-backed Store. Not durable; intended for tests.
type MemStore struct {
	m map[string][]byte
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *MemStore) Get(key string) ([]byte, error) {
	v, ok := s.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put stores value under key.
func (s *MemStore) Put(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

// Close is a no-op.
func (s *MemStore) Close() error { return nil }
