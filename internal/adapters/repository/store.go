// Package repository keeps generated chart records in memory so callers can
// fetch them back by id for the lifetime of the process.
package repository

import (
	"context"

	"github.com/okian/mingpan/internal/domain/chart"
)

// Store is the read/write contract for chart records.
type Store interface {
	// Put stores a record under its id, evicting the oldest record when the
	// store is at capacity.
	Put(ctx context.Context, rec chart.Record) error

	// Get returns the record stored under id, or ErrNotFound.
	Get(ctx context.Context, id string) (chart.Record, error)

	// Recent returns up to n records, newest first.
	Recent(ctx context.Context, n int) ([]chart.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
