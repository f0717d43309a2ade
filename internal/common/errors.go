// Package common defines sentinel errors shared by the gophmarks packages.
// Callers should use errors.Is to match these values, since lower layers
// wrap them with context.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrMalformedStore  = errors.New("malformed credential store")
	ErrMalformedLedger = errors.New("malformed ledger")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidUsername    = errors.New("invalid username")

	// Ledger errors.
	ErrMissingLedger = errors.New("no marks submitted yet")

	// Score validation errors.
	ErrMissingSubject  = errors.New("missing subject")
	ErrUnknownSubject  = errors.New("unknown subject")
	ErrScoreOutOfRange = errors.New("score out of range")

	// Export errors.
	ErrExportDisabled = errors.New("export is not configured")
)
