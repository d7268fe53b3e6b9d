package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reussir-academy/reussir_api/internal/identity"
	"github.com/reussir-academy/reussir_api/internal/notification"
)

// Receipt is what the confirmation flow hands off once a reference passes
// the format check.
type Receipt struct {
	Phone     string
	MethodID  string
	Reference string
}

// Verifier is the payment-verification collaborator. It owns the has_paid
// mutation; the confirmation flow only validates format and hands off.
// Implementations decide how hard they look at the reference.
type Verifier interface {
	Confirm(ctx context.Context, receipt Receipt) error
}

// ProfileVerifier accepts every well-formed receipt: it records the claim,
// marks the payer's profile paid and emits a notification. The recorded
// unique reference is what keeps a single SMS receipt from being replayed.
// A ledger-backed verifier can replace it behind the same interface.
type ProfileVerifier struct {
	claims    Repository
	profiles  identity.ProfileStore
	notifier  notification.Notifier
	amountXAF int64
}

// NewProfileVerifier constructs the shipped verifier.
func NewProfileVerifier(claims Repository, profiles identity.ProfileStore, notifier notification.Notifier, amountXAF int64) *ProfileVerifier {
	return &ProfileVerifier{claims: claims, profiles: profiles, notifier: notifier, amountXAF: amountXAF}
}

// Confirm records the claim and flips the entitlement.
func (v *ProfileVerifier) Confirm(ctx context.Context, receipt Receipt) error {
	method, ok := MethodByID(receipt.MethodID)
	if !ok {
		return ErrUnknownMethod
	}

	claim := Claim{
		ID:        uuid.NewString(),
		Phone:     receipt.Phone,
		MethodID:  method.ID,
		Reference: receipt.Reference,
		AmountXAF: v.amountXAF,
		Status:    StatusAccepted,
		CreatedAt: time.Now().UTC(),
	}
	if err := v.claims.Create(ctx, claim); err != nil {
		return err
	}

	if err := v.profiles.MarkPaid(ctx, receipt.Phone); err != nil {
		// Release the reference so the receipt stays usable on retry.
		if delErr := v.claims.Delete(ctx, claim.Reference); delErr != nil {
			return errors.Join(err, delErr)
		}
		return err
	}

	if v.notifier != nil {
		_ = v.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindPaymentConfirmed,
			Destination: receipt.Phone,
			Body:        fmt.Sprintf("Payment of %d FCFA via %s confirmed", v.amountXAF, method.Name),
		})
	}

	return nil
}
