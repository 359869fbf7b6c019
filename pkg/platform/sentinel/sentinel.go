package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Document stores return these
// (optionally wrapped) and services translate them into domain errors.
//
//   - ErrNotFound: document does not exist in its collection
//   - ErrConflict: a document with the same id already exists
//   - ErrInvalidState: document is in the wrong state for the operation
//   - ErrUnavailable: backing store or sink temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
