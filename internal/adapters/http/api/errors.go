package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrLimitExceeded = errors.New("limit exceeded")
)

// defaultRecentLimit applies when GET /charts carries no limit parameter.
const defaultRecentLimit = 10
