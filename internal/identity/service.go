package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/reussir-academy/reussir_api/internal/validation"
)

// Service orchestrates the registration and authentication flows against the
// external identity provider and profile store.
type Service struct {
	provider Provider
	profiles ProfileStore
	domain   string
}

// NewService builds an identity service. domain is the credential-address
// suffix appended to validated phone numbers.
func NewService(provider Provider, profiles ProfileStore, domain string) *Service {
	return &Service{provider: provider, profiles: profiles, domain: domain}
}

// CredentialAddress maps a validated phone number onto the address-shaped
// identifier the provider requires. Deterministic and injective for valid
// phones; it performs no validation of its own.
func (s *Service) CredentialAddress(phone string) string {
	return phone + "@" + s.domain
}

// Register runs the sign-up flow: format checks, duplicate pre-check, then
// account creation. The first failing step aborts with its own error and no
// side effect. The duplicate pre-check is an early exit, not a guarantee; the
// store's uniqueness constraint is the source of truth under concurrency.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Account, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return Account{}, ErrNameRequired
	}
	if !validation.Phone(input.Phone) {
		return Account{}, ErrInvalidPhone
	}
	if !validation.Password(input.Password) {
		return Account{}, ErrWeakPassword
	}
	if input.Password != input.ConfirmPassword {
		return Account{}, ErrPasswordMismatch
	}

	_, err := s.profiles.FindByPhone(ctx, input.Phone)
	switch {
	case err == nil:
		return Account{}, ErrPhoneTaken
	case !errors.Is(err, ErrProfileNotFound):
		return Account{}, wrapProvider("find profile", err)
	}

	account, err := s.provider.CreateAccount(ctx, s.CredentialAddress(input.Phone), input.Password, Metadata{
		FullName: strings.TrimSpace(input.FullName),
		Phone:    input.Phone,
	})
	if err != nil {
		if errors.Is(err, ErrAccountExists) {
			// Lost the pre-check race; same outcome as the early exit.
			return Account{}, ErrPhoneTaken
		}
		return Account{}, wrapProvider("create account", err)
	}

	return account, nil
}

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	Account     Account
	Profile     Profile
	Destination Destination
}

// Authenticate runs the sign-in flow: format checks, credential verification,
// then the one-time entitlement lookup and routing decision. A provider
// credential rejection becomes the generic ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (AuthResult, error) {
	if !validation.Phone(creds.Phone) {
		return AuthResult{}, ErrInvalidPhone
	}
	if !validation.Password(creds.Password) {
		return AuthResult{}, ErrWeakPassword
	}

	session, err := s.provider.VerifyCredentials(ctx, s.CredentialAddress(creds.Phone), creds.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, wrapProvider("verify credentials", err)
	}

	profile, err := s.profiles.FindByPhone(ctx, creds.Phone)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return AuthResult{}, wrapProvider("find profile", err)
	}

	return AuthResult{
		Account:     session.Account,
		Profile:     profile,
		Destination: DecideDestination(profile),
	}, nil
}

// Profile exposes the profile read used by protected endpoints.
func (s *Service) Profile(ctx context.Context, phone string) (Profile, error) {
	return s.profiles.FindByPhone(ctx, phone)
}
