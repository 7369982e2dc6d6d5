// Package answer provides use cases for managing answers to questions.
// It implements business logic for posting, modifying and deleting answers,
// including validation and the ownership check on mutations.
package answer

import "errors"

// Sentinel errors for answer use case operations.
var (
	// ErrAnswerNotFound indicates that the requested answer was not found.
	ErrAnswerNotFound = errors.New("answer not found")

	// ErrInvalidAnswerID indicates that the provided answer ID is invalid.
	// Answer IDs must be positive integers.
	ErrInvalidAnswerID = errors.New("invalid answer ID")

	// ErrQuestionNotFound indicates that the parent question does not exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAuthorNotFound indicates that the acting user does not exist.
	ErrAuthorNotFound = errors.New("author not found")
)
