package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps collections in process memory. It is the default
// backend and the one used by tests. The quota counts the total bytes
// across all collections, like the localStorage budget it stands in for.
type MemoryStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	quotaBytes int
}

func NewMemoryStore(quotaBytes int) *MemoryStore {
	if quotaBytes <= 0 {
		quotaBytes = DefaultQuotaBytes
	}
	return &MemoryStore{
		data:       make(map[string][]byte),
		quotaBytes: quotaBytes,
	}
}

func (s *MemoryStore) Load(_ context.Context, collection string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.data[collection]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, collection string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(blob)
	for name, b := range s.data {
		if name != collection {
			total += len(b)
		}
	}
	if total > s.quotaBytes {
		return ErrCapacityExceeded
	}

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.data[collection] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, collection)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
