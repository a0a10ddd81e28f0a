package relationship

import "errors"

// Sentinel kinds for relationship table errors.
var (
	ErrNoRecords = errors.New("no staff records to build relationships from")
)
