package identity

import "context"

// Provider is the hosted identity backend. This service consumes it; it never
// implements authentication itself. Implementations must return
// ErrBadCredentials for a failed credential check and ErrAccountExists for a
// create collision; any other error is treated as an upstream failure.
type Provider interface {
	CreateAccount(ctx context.Context, address, secret string, meta Metadata) (Account, error)
	VerifyCredentials(ctx context.Context, address, secret string) (Session, error)
}

// ProfileStore reads and mutates the entitlement profile keyed by phone
// number. FindByPhone must return ErrProfileNotFound when no row exists.
// MarkPaid is the write path reserved for the payment-verification
// collaborator; the auth flows only ever read.
type ProfileStore interface {
	FindByPhone(ctx context.Context, phone string) (Profile, error)
	MarkPaid(ctx context.Context, phone string) error
}
