package assembler

import "errors"

// Sentinel kinds for staff assembly errors.
var (
	// ErrTargetNotInGraph aborts a run: downstream aggregation assumes
	// the target exists.
	ErrTargetNotInGraph = errors.New("target head coach not present in graph")
)
