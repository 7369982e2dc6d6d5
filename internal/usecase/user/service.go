package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qna-board/internal/domain/entity"
	"qna-board/internal/repository"
)

// minPasswordLength is the minimum accepted password length at signup.
const minPasswordLength = 8

// Hasher is the credential collaborator used to hash passwords at signup.
// Verification happens at login via Compare.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(hashed, plaintext string) error
}

// SignUpInput represents the input parameters for registering a new user.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// Service provides user account use cases.
// It handles signup validation and delegates persistence to the repository.
type Service struct {
	Repo   repository.UserRepository
	Hasher Hasher
}

// SignUp registers a new user.
// It validates the input, rejects duplicate usernames and emails with
// ErrDuplicateUser, hashes the password and persists the account.
// Returns a ValidationError if any input field is invalid.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	if err := entity.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}
	}

	taken, err := s.Repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrDuplicateUser
	}
	taken, err = s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrDuplicateUser
	}

	hashed, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		// The unique constraint backstops the existence checks above when two
		// signups race on the same username or email.
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetByUsername retrieves a user by username.
// Returns ErrUserNotFound if no such user exists.
func (s *Service) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
