package auth

import (
	"errors"

	"github.com/reussir-academy/reussir_api/internal/config"
	"github.com/reussir-academy/reussir_api/internal/identity"
)

// Service issues and refreshes token pairs for authenticated users.
type Service struct {
	cfg config.Config
}

// NewService builds a token service.
func NewService(cfg config.Config) *Service {
	return &Service{cfg: cfg}
}

// TokenPair is the login response's credential material.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login mints an access/refresh pair for a completed authentication. The
// entitlement decided at login travels in the token and is not re-read until
// the next login.
func (s *Service) Login(result identity.AuthResult) (TokenPair, error) {
	paid := result.Destination == identity.DestinationDashboard

	access, err := sign(newClaims(result.Account.Address, result.Account.Phone, paid, s.cfg.AccessTokenTTL), []byte(s.cfg.JWTSecret))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := sign(newClaims(result.Account.Address, result.Account.Phone, paid, s.cfg.RefreshTokenTTL), []byte(s.cfg.RefreshSecret))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// Refresh verifies the refresh token and mints a new access token carrying
// the same identity and entitlement snapshot.
func (s *Service) Refresh(refreshToken string) (string, int64, error) {
	claims, err := Parse(refreshToken, []byte(s.cfg.RefreshSecret))
	if err != nil {
		return "", 0, errors.New("invalid refresh token")
	}

	access, err := sign(newClaims(claims.Subject, claims.Phone, claims.Paid, s.cfg.AccessTokenTTL), []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return access, int64(s.cfg.AccessTokenTTL.Seconds()), nil
}
