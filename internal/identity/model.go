package identity

import "time"

// Account is the record held by the identity provider, keyed by the synthetic
// credential address derived from the owner's phone number.
type Account struct {
	Address   string
	FullName  string
	Phone     string
	CreatedAt time.Time
}

// Profile carries the entitlement flag gating the dashboard. It is created as
// a side effect of account creation and keyed by the raw phone number.
type Profile struct {
	Phone     string
	HasPaid   bool
	CreatedAt time.Time
}

// Metadata travels with an account-creation request.
type Metadata struct {
	FullName string
	Phone    string
}

// RegisterInput is the registration form as submitted.
type RegisterInput struct {
	FullName        string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Credentials is the login form as submitted.
type Credentials struct {
	Phone    string
	Password string
}

// Session is the provider's proof of a successful credential check.
type Session struct {
	Account    Account
	VerifiedAt time.Time
}
