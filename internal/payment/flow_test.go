package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/reussir-academy/reussir_api/internal/identity"
)

const testPhone = "658508638"

func newTestVerifier() (*ProfileVerifier, *identity.MemoryProvider) {
	provider := identity.NewMemoryProvider()
	verifier := NewProfileVerifier(NewMemoryRepository(), provider, nil, 2050)
	return verifier, provider
}

func registerProfile(t *testing.T, provider *identity.MemoryProvider, phone string) {
	t.Helper()
	_, err := provider.CreateAccount(context.Background(), phone+"@reussir-academy.com", "secret1", identity.Metadata{
		FullName: "Test User",
		Phone:    phone,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
}

func TestFlowSelectShowsMatchingMethod(t *testing.T) {
	flow := NewFlow(testPhone)

	if flow.State() != StateMethodSelection {
		t.Fatalf("initial state = %s", flow.State())
	}

	for _, want := range Methods() {
		if err := flow.Select(want.ID); err != nil {
			t.Fatalf("select %s: %v", want.ID, err)
		}
		method, ok := flow.Method()
		if !ok {
			t.Fatalf("method not available after selecting %s", want.ID)
		}
		// No cross-method leakage: the shown receiving number is the
		// selected method's stored number.
		if method.Number != want.Number || method.Owner != want.Owner {
			t.Fatalf("selected %s but flow shows %s/%s", want.ID, method.Number, method.Owner)
		}
		flow.Back()
	}
}

func TestFlowSelectUnknownMethod(t *testing.T) {
	flow := NewFlow(testPhone)
	if err := flow.Select("paypal"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
	if flow.State() != StateMethodSelection {
		t.Fatal("failed selection must not advance the flow")
	}
}

func TestFlowBackDiscardsReference(t *testing.T) {
	flow := NewFlow(testPhone)
	if err := flow.Select("orange"); err != nil {
		t.Fatalf("select: %v", err)
	}
	flow.SetReference("PP250116.2359.B69653")

	flow.Back()
	if flow.State() != StateMethodSelection {
		t.Fatalf("state after back = %s", flow.State())
	}

	if err := flow.Select("mtn"); err != nil {
		t.Fatalf("re-select: %v", err)
	}
	if flow.Reference() != "" {
		t.Fatalf("re-entering reference entry must show an empty field, got %q", flow.Reference())
	}
}

func TestFlowSubmitInvalidFormatStaysPut(t *testing.T) {
	verifier, provider := newTestVerifier()
	registerProfile(t, provider, testPhone)

	flow := NewFlow(testPhone)
	if err := flow.Select("orange"); err != nil {
		t.Fatalf("select: %v", err)
	}
	flow.SetReference("PP2501162359B69653") // missing dots

	_, err := flow.Submit(context.Background(), verifier)
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if flow.State() != StateReferenceEntry {
		t.Fatal("invalid format must keep the flow in reference entry")
	}
	if flow.Error() == "" {
		t.Fatal("expected the error slot to be set")
	}

	profile, err := provider.FindByPhone(context.Background(), testPhone)
	if err != nil {
		t.Fatalf("find profile: %v", err)
	}
	if profile.HasPaid {
		t.Fatal("a rejected reference must not flip the entitlement")
	}
}

func TestFlowSubmitUpperCasesInput(t *testing.T) {
	verifier, provider := newTestVerifier()
	registerProfile(t, provider, testPhone)

	flow := NewFlow(testPhone)
	if err := flow.Select("mtn"); err != nil {
		t.Fatalf("select: %v", err)
	}
	flow.SetReference("pp250116.2359.b69653")

	dest, err := flow.Submit(context.Background(), verifier)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if dest != identity.DestinationDashboard {
		t.Fatalf("destination = %s", dest)
	}

	profile, err := provider.FindByPhone(context.Background(), testPhone)
	if err != nil {
		t.Fatalf("find profile: %v", err)
	}
	if !profile.HasPaid {
		t.Fatal("accepted reference must flip the entitlement")
	}
}

func TestFlowSubmitWithoutSelection(t *testing.T) {
	verifier, _ := newTestVerifier()
	flow := NewFlow(testPhone)
	if _, err := flow.Submit(context.Background(), verifier); !errors.Is(err, ErrNoMethodSelected) {
		t.Fatalf("expected ErrNoMethodSelected, got %v", err)
	}
}

func TestFlowEditClearsError(t *testing.T) {
	verifier, provider := newTestVerifier()
	registerProfile(t, provider, testPhone)

	flow := NewFlow(testPhone)
	if err := flow.Select("orange"); err != nil {
		t.Fatalf("select: %v", err)
	}
	flow.SetReference("garbage")
	if _, err := flow.Submit(context.Background(), verifier); err == nil {
		t.Fatal("expected a format error")
	}

	flow.SetReference("PP250116.2359.B69653")
	if flow.Error() != "" {
		t.Fatal("editing the reference must clear the stale error")
	}
}
