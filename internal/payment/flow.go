package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/reussir-academy/reussir_api/internal/identity"
	"github.com/reussir-academy/reussir_api/internal/session"
	"github.com/reussir-academy/reussir_api/internal/validation"
)

// State names a position in the confirmation flow.
type State string

const (
	// StateMethodSelection is the initial state: the user picks one method
	// from the closed catalog.
	StateMethodSelection State = "method_selection"
	// StateReferenceEntry shows the selected method's instructions and
	// accepts a transaction reference.
	StateReferenceEntry State = "reference_entry"
)

var (
	ErrNoMethodSelected   = errors.New("no payment method selected")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// Flow is the two-state payment confirmation machine for one user. It owns
// its state exclusively; a flow instance is driven by a single caller and
// discarded when the user navigates away. No partial state persists.
type Flow struct {
	session.Status
	phone     string
	state     State
	method    Method
	reference string
}

// NewFlow starts a confirmation flow in method selection.
func NewFlow(phone string) *Flow {
	return &Flow{phone: phone, state: StateMethodSelection}
}

// State returns the flow's current position.
func (f *Flow) State() State { return f.state }

// Method returns the selected method, valid only in reference entry.
func (f *Flow) Method() (Method, bool) {
	if f.state != StateReferenceEntry {
		return Method{}, false
	}
	return f.method, true
}

// Reference returns the reference as entered so far.
func (f *Flow) Reference() string { return f.reference }

// Select picks a method from the catalog and moves to reference entry.
// Selection itself cannot fail for catalog members; an unknown id is the
// only rejection.
func (f *Flow) Select(methodID string) error {
	method, ok := MethodByID(methodID)
	if !ok {
		return ErrUnknownMethod
	}
	f.method = method
	f.state = StateReferenceEntry
	f.reference = ""
	f.ClearError()
	return nil
}

// Back returns to method selection, discarding the entered reference.
// Re-entering reference entry starts from an empty field.
func (f *Flow) Back() {
	f.state = StateMethodSelection
	f.method = Method{}
	f.reference = ""
	f.ClearError()
}

// SetReference records the user's input, clearing any stale error.
func (f *Flow) SetReference(s string) {
	f.reference = s
	f.ClearError()
}

// Submit upper-cases and format-validates the reference, then hands off to
// the verifier. On success the flow is terminal and the user is routed to
// the dashboard; on failure the flow stays in reference entry for a retry.
func (f *Flow) Submit(ctx context.Context, verifier Verifier) (identity.Destination, error) {
	if f.state != StateReferenceEntry {
		return "", ErrNoMethodSelected
	}
	if !f.Begin() {
		return "", ErrSubmissionInFlight
	}
	defer f.Finish()

	reference := strings.ToUpper(strings.TrimSpace(f.reference))
	if !validation.TransactionReference(reference) {
		f.Fail(ErrInvalidReference.Error())
		return "", ErrInvalidReference
	}

	err := verifier.Confirm(ctx, Receipt{Phone: f.phone, MethodID: f.method.ID, Reference: reference})
	if err != nil {
		f.Fail(err.Error())
		return "", err
	}

	f.Succeed("payment recorded")
	return identity.DestinationDashboard, nil
}
