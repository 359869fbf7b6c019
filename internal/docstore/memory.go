package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps documents as JSON in process memory.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Create(_ context.Context, collection, id string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.collection(collection)
	if _, exists := c[id]; exists {
		return conflict(collection, id)
	}
	c[id] = raw
	return nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[id] = raw
	return nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	raw, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return nil, notFound(collection, id)
	}
	return decodeRaw(raw)
}

func (s *MemoryStore) Query(_ context.Context, collection string, filters ...Filter) ([]Document, error) {
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Document{}
	for _, raw := range s.collections[collection] {
		doc, err := decodeRaw(raw)
		if err != nil {
			return nil, err
		}
		if matchAll(doc, filters) {
			out = append(out, doc)
		}
	}
	sortByID(out)
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, ops ...Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.collections[collection][id]
	if !ok {
		return notFound(collection, id)
	}
	doc, err := decodeRaw(raw)
	if err != nil {
		return err
	}
	if err := doc.Apply(ops...); err != nil {
		return err
	}
	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	s.collections[collection][id] = updated
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection][id]; !ok {
		return notFound(collection, id)
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) collection(name string) map[string][]byte {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string][]byte)
		s.collections[name] = c
	}
	return c
}
