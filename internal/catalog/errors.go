package catalog

import "errors"

// Fault classes returned (wrapped) by Load.
var (
	ErrResourceMissing = errors.New("catalog resource missing")
	ErrUnreadable      = errors.New("catalog resource unreadable")
	ErrMalformed       = errors.New("catalog document malformed")
	ErrSchema          = errors.New("catalog document does not match schema")
)
