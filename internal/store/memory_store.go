package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore implements Store with an in-process map. It exists so the
// services can be exercised in tests without touching the filesystem.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get reads the value stored under key into v
func (ms *MemoryStore) Get(key string, v any) error {
	ms.mu.RLock()
	data, ok := ms.data[key]
	ms.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", key, err)
	}
	return nil
}

// Set replaces the entire value stored under key
func (ms *MemoryStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}

	ms.mu.Lock()
	ms.data[key] = data
	ms.mu.Unlock()
	return nil
}

// Delete removes the key; deleting an absent key is not an error
func (ms *MemoryStore) Delete(key string) error {
	ms.mu.Lock()
	delete(ms.data, key)
	ms.mu.Unlock()
	return nil
}

// Keys lists all persisted keys
func (ms *MemoryStore) Keys() ([]string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	keys := make([]string, 0, len(ms.data))
	for key := range ms.data {
		keys = append(keys, key)
	}
	return keys, nil
}

// Close releases any resources held by the store
func (ms *MemoryStore) Close() error {
	return nil
}
