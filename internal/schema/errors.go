package schema

import "errors"

// Error taxonomy shared across the engine. Wrap these with context at the
// call site; match with errors.Is at the orchestration boundary.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidValue = errors.New("invalid value")
	ErrIO           = errors.New("io error")
	ErrRead         = errors.New("read error")
)
