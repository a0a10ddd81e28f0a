// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
)

// Default tunables for the recommendation engine.
const (
	defaultRecencyCutoff  = 2022
	defaultMaxDegree      = 2
	defaultPromotionStep  = 0.4
	defaultTopPerPosition = 5
	defaultClusterCount   = 3
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// StaffFiles lists the staff/performance CSV inputs. Files that fail
	// to parse are skipped; the batch continues.
	StaffFiles []string `koanf:"staff_files"`

	// ClosenessFile points at the role closeness CSV. Empty means the
	// built-in table.
	ClosenessFile string `koanf:"closeness_file"`

	// PerformanceFiles lists precomputed performance composite CSVs, in
	// coalesce priority order.
	PerformanceFiles []string `koanf:"performance_files"`

	// Targets lists the target head coach ids to recommend staffs for.
	// Empty means every head-coach candidate in the graph.
	Targets []int `koanf:"targets"`

	// RecencyCutoff keeps only coaches active in or after this year as
	// graph nodes. Full history still feeds tenure.
	RecencyCutoff int `koanf:"recency_cutoff"`

	// MaxDegree bounds the candidate search distance from the target.
	MaxDegree int `koanf:"max_degree"`

	// PromotionStep bounds the closeness delta a coach can jump in one
	// promotion.
	PromotionStep float64 `koanf:"promotion_step"`

	// TopPerPosition caps the recommendation list per open position.
	TopPerPosition int `koanf:"top_per_position"`

	// ClusterCount sets k for candidate clustering.
	ClusterCount int `koanf:"cluster_count"`

	// WorkerCount bounds the parallel per-target recommendation runs.
	WorkerCount int `koanf:"worker_count"`

	// OutputDir receives the CSV outputs.
	OutputDir string `koanf:"output_dir"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		RecencyCutoff:  defaultRecencyCutoff,
		MaxDegree:      defaultMaxDegree,
		PromotionStep:  defaultPromotionStep,
		TopPerPosition: defaultTopPerPosition,
		ClusterCount:   defaultClusterCount,
		WorkerCount:    runtime.NumCPU(),
		OutputDir:      "out",
	}
}
