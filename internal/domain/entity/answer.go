package entity

import "time"

// Answer represents an answer to a question.
// Both QuestionID and AuthorID are fixed at creation. ModifyDate stays nil
// until the answer is edited for the first time.
type Answer struct {
	ID         int64
	QuestionID int64
	AuthorID   int64
	Content    string
	CreateDate time.Time
	ModifyDate *time.Time
}

// Modified reports whether the answer has been edited at least once.
func (a *Answer) Modified() bool {
	return a.ModifyDate != nil
}
