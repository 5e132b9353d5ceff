package credstore

import (
	"context"
	"crypto/cipher"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore is a Store backed by a single AEAD-encrypted JSON file on disk.
// Every mutation rewrites the whole file before returning, so the on-disk
// state is never ahead of or behind what callers have observed.
type FileStore struct {
	path string
	aead cipher.AEAD
	mu   sync.Mutex
}

// NewFileStore opens (or initializes) the credential file at path, deriving
// the encryption key from keyPath. The key file is created on first use.
func NewFileStore(path, keyPath string) (*FileStore, error) {
	key, err := loadOrCreateKey(keyPath)
	if err != nil {
		return nil, err
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, aead: aead}, nil
}

// load reads and decrypts the credential map. A missing file yields an
// empty map.
func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	plain, err := open(s.aead, string(raw))
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if err := json.Unmarshal(plain, &values); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	plain, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("serialize credentials: %w", err)
	}
	sealed, err := seal(s.aead, plain)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(sealed), 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Get returns the stored value for key, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key, persisting before returning.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}
