package entity

import "time"

// Question represents a question posted on the board.
// AuthorID is set at creation and never changes. ModifyDate stays nil until
// the question is edited for the first time.
type Question struct {
	ID         int64
	AuthorID   int64
	Subject    string
	Content    string
	CreateDate time.Time
	ModifyDate *time.Time
}

// Modified reports whether the question has been edited at least once.
func (q *Question) Modified() bool {
	return q.ModifyDate != nil
}
