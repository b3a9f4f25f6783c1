package types

import "errors"

// Contacts and record operation errors.
var (
	ErrInvalidField      = errors.New("invalid field")
	ErrUnknownRecordType = errors.New("unknown record type")
	ErrTimestampOrder    = errors.New("last-edited timestamp precedes creation")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
