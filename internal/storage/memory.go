package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"filmio-backend/internal/common"
)

// MemoryStore is an in-memory BlobStore used as a test double.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, hash, ext string, r io.Reader) error {
	key := hash + "/" + ext
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[key]; ok {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.blobs[key] = data
	return nil
}

func (s *MemoryStore) Open(_ context.Context, hash, ext string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[hash+"/"+ext]
	if !ok {
		return nil, common.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes a blob; tests use it to simulate a missing backing file.
func (s *MemoryStore) Delete(hash, ext string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, hash+"/"+ext)
}

// Len reports how many blobs are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
