package repository

import (
	"context"
	"sync"

	"github.com/okian/mingpan/internal/domain/chart"
	"github.com/okian/mingpan/pkg/metrics"
)

const defaultMaxSize = 10_000

// MemoryStore implements Store with a map plus an insertion-order ring.
// Charts are fetched by id and listed newest-first, never ranked, so a map
// with FIFO eviction covers the access pattern.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]chart.Record
	order   []string // insertion order, oldest first
	maxSize int
}

// NewMemoryStore creates a bounded in-memory store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.byID = make(map[string]chart.Record, s.maxSize)
	s.order = make([]string, 0, s.maxSize)
	return s
}

// Put stores rec, evicting the oldest records while at capacity.
func (s *MemoryStore) Put(_ context.Context, rec chart.Record) error {
	if rec.ID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[rec.ID]; !exists {
		for len(s.order) >= s.maxSize {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.byID, oldest)
		}
		s.order = append(s.order, rec.ID)
	}
	s.byID[rec.ID] = rec
	metrics.UpdateStoreSize(len(s.order))
	return nil
}

// Get returns the record stored under id.
func (s *MemoryStore) Get(_ context.Context, id string) (chart.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return chart.Record{}, ErrNotFound
	}
	return rec, nil
}

// Recent returns up to n records, newest first.
func (s *MemoryStore) Recent(_ context.Context, n int) ([]chart.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.order) {
		n = len(s.order)
	}
	if n <= 0 {
		return nil, nil
	}
	out := make([]chart.Record, 0, n)
	for i := len(s.order) - 1; i >= len(s.order)-n; i-- {
		out = append(out, s.byID[s.order[i]])
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
