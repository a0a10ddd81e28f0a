package app

import "errors"

// Sentinel kinds for pipeline errors.
var (
	ErrNotBuilt   = errors.New("pipeline not built; call Build first")
	ErrEmptyGraph = errors.New("co-staff graph has no nodes after recency filter")
)
