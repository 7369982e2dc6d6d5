package entity_test

import (
	"errors"
	"strings"
	"testing"

	"qna-board/internal/domain/entity"
)

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr bool
	}{
		{name: "valid subject", subject: "How do I parse a timestamp?", wantErr: false},
		{name: "empty", subject: "", wantErr: true},
		{name: "whitespace only", subject: "   \t\n", wantErr: true},
		{name: "exactly max length", subject: strings.Repeat("a", entity.MaxSubjectLength), wantErr: false},
		{name: "over max length", subject: strings.Repeat("a", entity.MaxSubjectLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateSubject(tt.subject)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var valErr *entity.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("want *ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "valid content", content: "Use time.RFC3339 as the layout.", wantErr: false},
		{name: "empty", content: "", wantErr: true},
		{name: "whitespace only", content: " \t ", wantErr: true},
		{name: "single character", content: "x", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid username", username: "alice", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "whitespace only", username: "  ", wantErr: true},
		{name: "contains space", username: "alice smith", wantErr: true},
		{name: "contains tab", username: "alice\tsmith", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 65), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "alice@example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at sign", email: "alice.example.com", wantErr: true},
		{name: "at sign first", email: "@example.com", wantErr: true},
		{name: "at sign last", email: "alice@", wantErr: true},
		{name: "too long", email: strings.Repeat("a", 250) + "@e.co", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
