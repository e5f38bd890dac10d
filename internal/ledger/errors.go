package ledger

import "errors"

// Sentinel errors for the completion ledger. Handlers map these onto HTTP
// statuses; everything else is treated as an internal failure.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
)
