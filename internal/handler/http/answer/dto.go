// Package answer provides HTTP handlers for answer-related endpoints.
// It includes handlers for creating, updating, and deleting answers.
package answer

import "time"

// DTO represents the JSON structure for answer data transfer.
type DTO struct {
	ID         int64      `json:"id" example:"1"`
	QuestionID int64      `json:"question_id" example:"1"`
	Content    string     `json:"content" example:"Use time.RFC3339 as the layout."`
	Author     string     `json:"author" example:"bob"`
	CreateDate time.Time  `json:"create_date" example:"2025-10-26T12:30:00Z"`
	ModifyDate *time.Time `json:"modify_date,omitempty"`
}
