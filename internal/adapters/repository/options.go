package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithMaxSize bounds the number of records kept before FIFO eviction.
func WithMaxSize(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxSize = n
		}
	}
}
