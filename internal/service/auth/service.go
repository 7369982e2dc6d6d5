// Package auth contains framework-agnostic authentication logic.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match a stored account. The message is intentionally identical for unknown
// users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
}

// Provider defines the interface for authentication providers.
// This interface is framework-agnostic and can be implemented by various
// authentication mechanisms.
type Provider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// Service handles authentication business logic.
// This service is framework-agnostic and can be used with any HTTP framework or CLI.
type Service struct {
	provider Provider
}

// NewService creates a new authentication service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *Service) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// GetProvider returns the current authentication provider.
func (s *Service) GetProvider() Provider {
	return s.provider
}
