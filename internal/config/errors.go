package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrInvalidMaxDegree      = errors.New("max_degree must be at least 1")
	ErrInvalidPromotionStep  = errors.New("promotion_step must be in [0, 1]")
	ErrInvalidTopPerPosition = errors.New("top_per_position must be at least 1")
	ErrInvalidClusterCount   = errors.New("cluster_count must be at least 1")
)
