package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MINGPAN_CONFIG is set
//  3. env (prefix MINGPAN_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MINGPAN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MINGPAN_ADDR, MINGPAN_STORE_SIZE, ...
	// Keys map like MINGPAN_STORE_SIZE -> store_size to match koanf tags.
	envProvider := env.Provider("MINGPAN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mingpan_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.StoreSize < 1:
		return nil, fmt.Errorf("%w: store_size must be positive", ErrInvalidConfig)
	case cfg.MaxRecentLimit < 1:
		return nil, fmt.Errorf("%w: max_recent_limit must be positive", ErrInvalidConfig)
	case cfg.LunarOffsetDays < 0:
		return nil, fmt.Errorf("%w: lunar_offset_days must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
