package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// MemoryPath selects the non-persistent key-value backend.
const MemoryPath = ":memory:"

// fileKeyValue keeps client data in a JSON document on disk, or only in
// memory when its path is [MemoryPath]. Every Set rewrites the file.
type fileKeyValue struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	values map[string]string
}

// NewFileKeyValue opens the JSON-file backend at path, loading existing
// entries. An empty path or [MemoryPath] keeps the data in memory only.
func NewFileKeyValue(path string) (KeyValue, error) {
	if path == "" {
		path = MemoryPath
	}

	s := &fileKeyValue{
		path:     path,
		inMemory: path == MemoryPath,
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemoryKeyValue returns an empty in-memory backend.
func NewMemoryKeyValue() KeyValue {
	return &fileKeyValue{
		path:     MemoryPath,
		inMemory: true,
		values:   make(map[string]string),
	}
}

func (s *fileKeyValue) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	values := make(map[string]string)
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	s.values = values

	return nil
}

func (s *fileKeyValue) persist() error {
	if s.inMemory {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	return nil
}

func (s *fileKeyValue) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return []byte(value), nil
}

func (s *fileKeyValue) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := maps.Clone(s.values)
	s.values[key] = string(value)
	if err := s.persist(); err != nil {
		s.values = previous
		return err
	}
	return nil
}

func (s *fileKeyValue) Close() error {
	return nil
}
