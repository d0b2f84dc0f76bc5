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
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if MONACO_CONFIG is set
//  3. env (prefix MONACO_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MONACO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MONACO_ADDR, MONACO_QUEUE_SIZE, ...
	// Map env keys like MONACO_QUEUE_SIZE -> queue_size (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MONACO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "monaco_")
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.GroupMin < 1 {
		return fmt.Errorf("%w: group_min must be at least 1", ErrInvalidConfig)
	}
	if c.GroupMax < c.GroupMin {
		return fmt.Errorf("%w: group_max must not be below group_min", ErrInvalidConfig)
	}
	if c.GroupIdeal < c.GroupMin || c.GroupIdeal > c.GroupMax {
		return fmt.Errorf("%w: group_ideal must fall within group_min and group_max", ErrInvalidConfig)
	}
	if c.MaxRosterSize < 1 {
		return fmt.Errorf("%w: max_roster_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Priorities converts the configured role priority map into typed
// priorities, dropping unknown role names.
func (c *Config) Priorities() map[string]int {
	out := make(map[string]int, len(c.RolePriorities))
	for role, weight := range c.RolePriorities {
		out[strings.ToLower(role)] = weight
	}
	return out
}
