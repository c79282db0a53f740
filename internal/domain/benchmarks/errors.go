package benchmarks

import "errors"

// ErrNotFound is returned when no result exists for an id.
var ErrNotFound = errors.New("benchmark result not found")
