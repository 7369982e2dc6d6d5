// Package repository defines the persistence interfaces consumed by the use
// case layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"qna-board/internal/domain/entity"
)

// UserRepository provides access to stored user accounts.
type UserRepository interface {
	// Get retrieves a user by ID. Returns (nil, nil) if the user is not found.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByUsername retrieves a user by username.
	// Returns (nil, nil) if the user is not found.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create persists a new user and fills in the generated ID.
	// Returns entity.ErrDuplicate if the username or email is already taken.
	Create(ctx context.Context, user *entity.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
