package entity

import (
	"fmt"
	"strings"
)

// Field length bounds for posted content and identities.
const (
	// MaxSubjectLength is the maximum allowed length for a question subject.
	MaxSubjectLength = 200

	// maxUsernameLength bounds usernames to keep ownership comparisons sane.
	maxUsernameLength = 64

	// maxEmailLength bounds email addresses at signup.
	maxEmailLength = 254
)

// ValidateSubject validates a question subject.
// The subject must contain at least one non-whitespace character and must not
// exceed MaxSubjectLength characters.
func ValidateSubject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return &ValidationError{Field: "subject", Message: "is required"}
	}
	if len(subject) > MaxSubjectLength {
		return &ValidationError{
			Field:   "subject",
			Message: fmt.Sprintf("must not exceed %d characters", MaxSubjectLength),
		}
	}
	return nil
}

// ValidateContent validates the body of a question or answer.
// The content must contain at least one non-whitespace character.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	return nil
}

// ValidateUsername validates a username at signup.
// Usernames must be non-blank, contain no whitespace, and fit the length bound.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return &ValidationError{Field: "username", Message: "must not contain whitespace"}
	}
	if len(username) > maxUsernameLength {
		return &ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("must not exceed %d characters", maxUsernameLength),
		}
	}
	return nil
}

// ValidateEmail performs a light-weight syntactic check on an email address.
// Full RFC validation is deliberately out of scope; the store enforces uniqueness.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(email) > maxEmailLength {
		return &ValidationError{
			Field:   "email",
			Message: fmt.Sprintf("must not exceed %d characters", maxEmailLength),
		}
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}
