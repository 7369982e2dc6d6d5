// Package user provides use cases for account registration and lookup.
// It implements signup validation, duplicate identity rejection and password
// hashing via the credential collaborator.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates that the username or email is already taken.
	// The caller may retry signup with different values.
	ErrDuplicateUser = errors.New("username or email already exists")
)
