package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/itemdeck/internal/store"
)

// JSON-backed storage. One human-readable file per key inside a directory.
// No locking; a single local user owns the directory.

const fileExt = ".json"

type Store struct {
	dir string
}

// New prepares dir (creating it if needed) and returns a store rooted there.
func New(dir string) (*Store, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) dataPath(key string) (string, error) {
	if err := store.ValidKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

func (s *Store) Get(key string) ([]byte, error) {
	p, err := s.dataPath(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Set writes value to the key's file. Valid JSON is re-indented so the file
// stays readable; anything else is written verbatim.
func (s *Store) Set(key string, value []byte) error {
	p, err := s.dataPath(key)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if json.Indent(&buf, value, "", "  ") == nil {
		value = buf.Bytes()
	}
	if err := os.WriteFile(p, value, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
