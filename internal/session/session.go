// Package session models the transient per-flow form state: which mode the
// auth form is in, its field values, the single error and success slots, and
// the submission guard. State is owned by one flow instance at a time and is
// discarded on navigation; nothing here persists.
package session

// Mode selects between the two faces of the auth form.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// Field names an editable input of the auth form.
type Field int

const (
	FieldFullName Field = iota
	FieldPhone
	FieldPassword
	FieldConfirmPassword
)

// Values is a snapshot of the form's inputs.
type Values struct {
	FullName        string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Status is the shared error/success surface carried by every flow: one
// mutable error slot, one mutable success slot, and a re-entrancy guard for
// the submit action. At most one of the two slots is set.
type Status struct {
	errMsg     string
	successMsg string
	submitting bool
}

// Fail records a user-visible error and clears any stale success message.
func (s *Status) Fail(msg string) {
	s.errMsg = msg
	s.successMsg = ""
}

// Succeed records a success message and clears any stale error.
func (s *Status) Succeed(msg string) {
	s.successMsg = msg
	s.errMsg = ""
}

// ClearError drops the error slot without touching the success slot.
func (s *Status) ClearError() { s.errMsg = "" }

// Clear empties both slots.
func (s *Status) Clear() {
	s.errMsg = ""
	s.successMsg = ""
}

// Begin marks a submission in flight. It returns false when one is already
// running; the caller must not start another. In-flight work is never
// cancelled, only gated.
func (s *Status) Begin() bool {
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// Finish ends the in-flight submission.
func (s *Status) Finish() { s.submitting = false }

// Submitting reports whether a submission is in flight.
func (s *Status) Submitting() bool { return s.submitting }

// Error returns the current error message, empty when none.
func (s *Status) Error() string { return s.errMsg }

// Success returns the current success message, empty when none.
func (s *Status) Success() string { return s.successMsg }

// Form is the auth form's full transient state.
type Form struct {
	Status
	mode   Mode
	values Values
}

// NewForm starts in login mode with empty fields.
func NewForm() *Form {
	return &Form{mode: ModeLogin}
}

// Mode returns the active form mode.
func (f *Form) Mode() Mode { return f.mode }

// SwitchMode changes the active mode and clears both message slots, matching
// a user flipping between the login and register tabs.
func (f *Form) SwitchMode(m Mode) {
	f.mode = m
	f.Clear()
}

// Set updates one field and silently clears any stale error. Success messages
// survive edits; only errors are scoped to the latest submission attempt.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldFullName:
		f.values.FullName = value
	case FieldPhone:
		f.values.Phone = value
	case FieldPassword:
		f.values.Password = value
	case FieldConfirmPassword:
		f.values.ConfirmPassword = value
	}
	f.ClearError()
}

// Values returns a snapshot of the current inputs.
func (f *Form) Values() Values { return f.values }

// Reset empties every field.
func (f *Form) Reset() { f.values = Values{} }

// RegistrationSucceeded applies the post-registration transition: success
// message set, fields wiped, and the form flipped to login mode so the user
// signs in explicitly. Registration never auto-authenticates.
func (f *Form) RegistrationSucceeded(msg string) {
	f.Succeed(msg)
	f.Reset()
	f.mode = ModeLogin
}
