package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if COACHNET_CONFIG is set
//  3. env (prefix COACHNET_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("COACHNET_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: COACHNET_MAX_DEGREE, COACHNET_RECENCY_CUTOFF, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("COACHNET_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "coachnet_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.MaxDegree < 1 {
		return nil, ErrInvalidMaxDegree
	}
	if cfg.PromotionStep < 0 || cfg.PromotionStep > 1 {
		return nil, ErrInvalidPromotionStep
	}
	if cfg.TopPerPosition < 1 {
		return nil, ErrInvalidTopPerPosition
	}
	if cfg.ClusterCount < 1 {
		return nil, ErrInvalidClusterCount
	}
	return &cfg, nil
}
