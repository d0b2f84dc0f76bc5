// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// JobQueueSize bounds the in-memory composition job queue.
	JobQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of composition workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the request deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// StoreSize caps the number of retained composition results.
	StoreSize int `koanf:"store_size"`

	// MaxRosterSize caps the number of candidates accepted per request.
	MaxRosterSize int `koanf:"max_roster_size"`

	// GroupMin, GroupMax, and GroupIdeal are the default group size
	// bounds applied when a request does not specify its own.
	GroupMin   int `koanf:"group_min"`
	GroupMax   int `koanf:"group_max"`
	GroupIdeal int `koanf:"group_ideal"`

	// RolePriorities maps role names to their priority weights.
	RolePriorities map[string]int `koanf:"role_priorities"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		JobQueueSize:  10_000,
		WorkerCount:   runtime.NumCPU() * 2,
		DedupeSize:    50_000,
		StoreSize:     10_000,
		MaxRosterSize: 1_000,
		GroupMin:      5,
		GroupMax:      12,
		GroupIdeal:    8,
		RolePriorities: map[string]int{
			"decision":    10,
			"champion":    8,
			"stakeholder": 6,
			"blocker":     5,
			"introducer":  4,
		},
	}
	return c
}
