// Package common defines shared constants and sentinel errors used across
// the AdCreativeX client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Identity / session errors.
	ErrMissingInput       = errors.New("missing required input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrValidation         = errors.New("validation error")

	// Ad-account link errors.
	ErrLinkInProgress   = errors.New("ad account link already in progress")
	ErrAlreadyConnected = errors.New("ad account already connected")
	ErrNotConnected     = errors.New("ad account not connected")
	ErrLinkFailed       = errors.New("ad account link failed")

	// Link token errors.
	ErrInvalidLinkToken = errors.New("invalid link token")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")
)
