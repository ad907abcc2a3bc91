// Package kvstore is the sole persistence boundary of the application: a
// file-backed key-value store holding one JSON document per key. Every
// collection and the session pointer round-trip through it under a fixed key.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidKey  = errors.New("invalid key")
)

// Store persists each key as <dir>/<key>.json. Writes go through a temp file
// and an atomic rename so a crash leaves either the old or the new document,
// never a torn one.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Clean(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Remove deletes the document stored under key. Removing an absent key is not
// an error.
func (s *Store) Remove(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Read loads and decodes the document stored under key. A missing key yields
// ErrKeyNotFound; IO and decode faults are returned wrapped, never swallowed.
func Read[T any](s *Store, key string) (T, error) {
	var value T

	path, err := s.path(key)
	if err != nil {
		return value, err
	}

	s.mu.Lock()
	content, err := os.ReadFile(path)
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return value, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		return value, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	if err := json.Unmarshal(content, &value); err != nil {
		return value, fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return value, nil
}

// ReadOr loads the document stored under key, falling back to def on any
// fault. The fault is logged and swallowed; callers never observe it.
func ReadOr[T any](s *Store, key string, def T) T {
	value, err := Read[T](s, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			slog.Error("kvstore read failed, using default", "key", key, "error", err)
		}
		return def
	}
	return value
}

// Write serializes value and stores it under key, replacing any previous
// document in full.
func Write[T any](s *Store, key string, value T) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
