package convert

import "errors"

// Failure classes of a file conversion. Returned errors wrap one of these
// together with the underlying cause.
var (
	ErrNotFound = errors.New("input file not found")
	ErrBackup   = errors.New("failed to create backup")
	ErrRead     = errors.New("failed to read input")
	ErrWrite    = errors.New("failed to write output")
)
