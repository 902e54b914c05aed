package repository

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotFound = errors.New("chart not found")
	ErrEmptyID  = errors.New("empty chart id")
)
