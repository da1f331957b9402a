package storage

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/dmitrijs2005/plantpal/internal/common"
)

type object struct {
	contentType string
	data        []byte
}

// MemoryStore keeps objects in process memory and serves them as data URLs.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]object)}
}

func (s *MemoryStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = object{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

func (s *MemoryStore) URL(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.objects[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return "data:" + o.contentType + ";base64," + base64.StdEncoding.EncodeToString(o.data), nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}
