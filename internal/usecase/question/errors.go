// Package question provides use cases for managing questions.
// It implements business logic for creating, modifying, deleting and listing
// questions, including validation and the ownership check on mutations.
package question

import "errors"

// Sentinel errors for question use case operations.
var (
	// ErrQuestionNotFound indicates that the requested question was not found.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrInvalidQuestionID indicates that the provided question ID is invalid.
	// Question IDs must be positive integers.
	ErrInvalidQuestionID = errors.New("invalid question ID")

	// ErrAuthorNotFound indicates that the acting user does not exist.
	ErrAuthorNotFound = errors.New("author not found")
)
