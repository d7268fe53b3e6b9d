package session

import "testing"

func TestEditClearsError(t *testing.T) {
	f := NewForm()
	f.Fail("wrong password")

	f.Set(FieldPassword, "secret1")

	if f.Error() != "" {
		t.Fatal("editing a field must clear the stale error")
	}
}

func TestOneMessageAtATime(t *testing.T) {
	f := NewForm()

	f.Fail("bad phone")
	if f.Success() != "" {
		t.Fatal("error must clear success")
	}

	f.Succeed("all good")
	if f.Error() != "" {
		t.Fatal("success must clear error")
	}
	if f.Success() != "all good" {
		t.Fatalf("unexpected success message %q", f.Success())
	}
}

func TestSubmitGuard(t *testing.T) {
	f := NewForm()

	if !f.Begin() {
		t.Fatal("first Begin must succeed")
	}
	if f.Begin() {
		t.Fatal("re-entrant Begin must be rejected while submitting")
	}
	f.Finish()
	if !f.Begin() {
		t.Fatal("Begin must succeed again after Finish")
	}
}

func TestSwitchModeClearsMessages(t *testing.T) {
	f := NewForm()
	f.Fail("boom")

	f.SwitchMode(ModeRegister)

	if f.Mode() != ModeRegister {
		t.Fatalf("mode = %s", f.Mode())
	}
	if f.Error() != "" || f.Success() != "" {
		t.Fatal("switching tabs clears both message slots")
	}
}

func TestRegistrationSucceeded(t *testing.T) {
	f := NewForm()
	f.SwitchMode(ModeRegister)
	f.Set(FieldFullName, "Patrick Ngono")
	f.Set(FieldPhone, "658508638")
	f.Set(FieldPassword, "secret1")
	f.Set(FieldConfirmPassword, "secret1")

	f.RegistrationSucceeded("registration successful, you can now sign in")

	if f.Mode() != ModeLogin {
		t.Fatalf("expected login mode after registration, got %s", f.Mode())
	}
	if f.Values() != (Values{}) {
		t.Fatalf("expected empty fields, got %+v", f.Values())
	}
	if f.Success() == "" || f.Error() != "" {
		t.Fatal("expected only a success message")
	}
}
