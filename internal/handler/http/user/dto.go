// Package user provides HTTP handlers for account endpoints.
package user

import "time"

// DTO represents the JSON structure for user data transfer.
// Password hashes never leave the server.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
}
