package auth

import (
	"context"
	"fmt"

	authservice "qna-board/internal/service/auth"
	"qna-board/internal/repository"
	userUC "qna-board/internal/usecase/user"
)

// AccountProvider implements database-backed authentication against the
// registered user accounts.
type AccountProvider struct {
	users             repository.UserRepository
	hasher            userUC.Hasher
	minPasswordLength int

	// dummyHash is compared against when the username does not exist, so
	// unknown users and wrong passwords take the same time to reject.
	dummyHash string
}

// NewAccountProvider creates a new database-backed auth provider.
func NewAccountProvider(users repository.UserRepository, hasher userUC.Hasher, minPasswordLength int) (*AccountProvider, error) {
	dummy, err := hasher.Hash("account-provider-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("compute dummy hash: %w", err)
	}
	return &AccountProvider{
		users:             users,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		dummyHash:         dummy,
	}, nil
}

// ValidateCredentials validates credentials against stored accounts.
func (p *AccountProvider) ValidateCredentials(ctx context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return authservice.ErrInvalidCredentials
	}

	user, err := p.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return fmt.Errorf("look up account: %w", err)
	}
	if user == nil {
		// Burn a comparison so the response time matches the found case.
		_ = p.hasher.Compare(p.dummyHash, creds.Password)
		return authservice.ErrInvalidCredentials
	}

	if err := p.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return authservice.ErrInvalidCredentials
	}
	return nil
}

// GetRequirements returns the password requirements.
func (p *AccountProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
	}
}

// Name returns the provider name.
func (p *AccountProvider) Name() string {
	return "account"
}
