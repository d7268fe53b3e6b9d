package identity

import (
	"errors"
	"fmt"
)

// Flow errors, surfaced to the user as a single message per failed submission.
var (
	ErrNameRequired       = errors.New("full name is required")
	ErrInvalidPhone       = errors.New("phone number must start with 6 and contain 9 digits")
	ErrWeakPassword       = errors.New("password must contain at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("incorrect phone number or password")
)

// Provider-level sentinels returned by Provider and ProfileStore
// implementations. The flows translate them before anything reaches a user.
var (
	// ErrBadCredentials is the one provider failure the authentication flow
	// must recognize. It maps to ErrInvalidCredentials so a login attempt
	// never reveals whether the phone exists.
	ErrBadCredentials = errors.New("provider rejected credentials")

	// ErrAccountExists reports a create collision. The registration pre-check
	// makes this rare but not impossible: two concurrent registrations can
	// both pass the pre-check, and the store constraint decides the loser.
	ErrAccountExists = errors.New("account already exists")

	ErrProfileNotFound = errors.New("profile not found")
)

// ProviderError wraps any unrecognized failure from the identity or profile
// backend so callers can tell an upstream outage apart from a user mistake.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func wrapProvider(op string, err error) error {
	return &ProviderError{Op: op, Err: err}
}
