package payment

import (
	"context"
	"errors"
	"time"
)

// StatusAccepted marks a claim whose reference passed verification and
// flipped the payer's entitlement.
const StatusAccepted = "accepted"

var (
	ErrUnknownMethod    = errors.New("unknown payment method")
	ErrInvalidReference = errors.New("invalid transaction id format, example: PP250116.2359.B69653")

	// ErrDuplicateReference rejects a reference already on file: one SMS
	// receipt cannot be replayed across accounts or attempts.
	ErrDuplicateReference = errors.New("transaction id already used")
)

// Claim is the persisted record of an accepted payment confirmation.
type Claim struct {
	ID        string
	Phone     string
	MethodID  string
	Reference string
	AmountXAF int64
	Status    string
	CreatedAt time.Time
}

// Repository persists claims. Create must return ErrDuplicateReference when
// the reference is already on file; Delete releases a reference so the same
// receipt can be resubmitted, and is a no-op for an absent one.
type Repository interface {
	Create(ctx context.Context, claim Claim) error
	Delete(ctx context.Context, reference string) error
	ListByPhone(ctx context.Context, phone string) ([]Claim, error)
}
