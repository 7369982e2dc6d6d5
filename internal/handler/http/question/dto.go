// Package question provides HTTP handlers for question-related endpoints.
// It includes handlers for listing, viewing, creating, updating, and deleting questions.
package question

import "time"

// DTO represents the JSON structure for question data transfer.
type DTO struct {
	ID         int64      `json:"id" example:"1"`
	Subject    string     `json:"subject" example:"How do I parse a timestamp?"`
	Content    string     `json:"content" example:"time.Parse keeps returning an error for..."`
	Author     string     `json:"author" example:"alice"`
	CreateDate time.Time  `json:"create_date" example:"2025-10-26T12:00:00Z"`
	ModifyDate *time.Time `json:"modify_date,omitempty"`
}

// AnswerDTO represents an answer nested inside a question detail response.
type AnswerDTO struct {
	ID         int64      `json:"id" example:"1"`
	Content    string     `json:"content" example:"Use time.RFC3339 as the layout."`
	Author     string     `json:"author" example:"bob"`
	CreateDate time.Time  `json:"create_date" example:"2025-10-26T12:30:00Z"`
	ModifyDate *time.Time `json:"modify_date,omitempty"`
}

// DetailDTO represents a question together with all of its answers.
type DetailDTO struct {
	DTO
	Answers []AnswerDTO `json:"answers"`
}
