package csvio

import "errors"

// Sentinel kinds for CSV ingestion errors.
var (
	ErrNoInputFiles = errors.New("no input files could be loaded")
)
