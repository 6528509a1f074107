package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const tmpSuffix = ".tmp"

// FileStore implements Store with one JSON document per key in a directory.
// Writes go through a temp file and a rename so a crash mid-write never
// leaves a half-written document behind.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a new FileStore rooted at dir
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Get reads the value stored under key into v
func (fs *FileStore) Get(key string, v any) error {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %q: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Malformed persisted state is treated as absent rather than fatal;
		// the next Set will replace it with a well-formed document.
		fs.logger.Warn("Discarding malformed persisted value",
			zap.String("key", key),
			zap.Error(err))
		return ErrNotFound
	}

	return nil
}

// Set replaces the entire value stored under key
func (fs *FileStore) Set(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}

	path := fs.path(key)
	tmp := path + tmpSuffix
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit %q: %w", key, err)
	}

	return nil
}

// Delete removes the key; deleting an absent key is not an error
func (fs *FileStore) Delete(key string) error {
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Keys lists all persisted keys
func (fs *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage directory: %w", err)
	}

	keys := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

// Close releases any resources held by the store
func (fs *FileStore) Close() error {
	return nil
}

func (fs *FileStore) path(key string) string {
	// Keys are flat identifiers like "schedule" or "quiz-1"; anything that
	// could escape the storage directory is flattened.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(fs.dir, safe+".json")
}
