// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User, Question and Answer, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered member of the board.
// The username is fixed at signup and is the identity used for ownership checks.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
