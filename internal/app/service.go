// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/mingpan/internal/adapters/repository"
	"github.com/okian/mingpan/internal/domain/chart"
	"github.com/okian/mingpan/pkg/logger"
	"github.com/okian/mingpan/pkg/metrics"
)

// Service wires the chart generator and the record store behind one
// lifecycle. Generation itself is synchronous; the only shared mutable state
// is the store, which handles its own locking.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	generator *chart.Generator

	// Configuration
	storeSize       int
	lunarOffsetDays int

	// State
	started   bool
	startedAt time.Time
	generated atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStoreSize bounds the in-memory chart store.
func WithStoreSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.storeSize = size
		}
	}
}

// WithLunarOffsetDays overrides the flat lunar-to-solar day shift.
func WithLunarOffsetDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.lunarOffsetDays = days
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		storeSize:       10_000,
		lunarOffsetDays: chart.DefaultLunarOffsetDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.store = repository.NewMemoryStore(
		repository.WithMaxSize(s.storeSize),
	)
	s.generator = chart.NewGenerator(
		chart.WithLunarOffsetDays(s.lunarOffsetDays),
	)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "chart service started",
		logger.Int("storeSize", s.storeSize),
		logger.Int("lunarOffsetDays", s.lunarOffsetDays),
	)
	return nil
}

// Stop shuts the service down. Generation is synchronous so there is nothing
// to drain; the store contents are dropped with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "chart service stopped",
		logger.Int("chartsGenerated", int(s.generated.Load())),
	)
}

// Generate builds a chart record for in and stores it for later retrieval.
func (s *Service) Generate(ctx context.Context, in chart.BirthInput) (chart.Record, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return chart.Record{}, ErrNotStarted
	}

	begin := time.Now()
	rec := s.generator.Generate(in)
	if err := s.store.Put(ctx, rec); err != nil {
		return chart.Record{}, err
	}

	s.generated.Add(1)
	metrics.RecordChartGenerated()
	metrics.RecordGenerationDuration(float64(time.Since(begin).Microseconds()) / 1e3)
	if in.IsLunar {
		metrics.RecordLunarConversion()
	}
	for element, n := range rec.Elements {
		if n > 0 {
			metrics.AddElementCount(string(element), n)
		}
	}

	s.logger.Debug(ctx, "chart generated",
		logger.String("id", rec.ID),
		logger.String("pillars", chart.FormatPillars(rec)),
		logger.String("zodiac", rec.ZodiacAnimal),
		logger.String("constellation", rec.Constellation),
		logger.Bool("lunar", in.IsLunar),
	)
	return rec, nil
}

// Chart returns a previously generated record by id.
func (s *Service) Chart(ctx context.Context, id string) (chart.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return chart.Record{}, ErrNotStarted
	}
	return s.store.Get(ctx, id)
}

// Recent returns up to n recent records, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]chart.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store.Recent(ctx, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"storeSize":       s.storeSize,
		"lunarOffsetDays": s.lunarOffsetDays,
		"chartsGenerated": s.generated.Load(),
	}
	if s.started {
		stored := s.store.Count(context.Background())
		stats["storedCharts"] = stored
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		metrics.UpdateStoreSize(stored)
	}
	return stats
}
