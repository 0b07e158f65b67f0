package storage

import (
	"fmt"
	"sync"

	"github.com/goccy/go-json"
)

// MemoryStore is an in-process Store used by tests. Documents round-trip
// through JSON so it behaves like FileStore, minus the filesystem.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(name string, out interface{}) error {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return nil
}

func (s *MemoryStore) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}

	s.mu.Lock()
	s.docs[name] = data
	s.mu.Unlock()
	return nil
}
