package repository

import (
	"context"

	"qna-board/internal/domain/entity"
)

// AnswerWithAuthor represents an answer along with its author's username.
type AnswerWithAuthor struct {
	Answer     *entity.Answer
	AuthorName string
}

// AnswerRepository provides access to stored answers.
type AnswerRepository interface {
	// Get retrieves an answer by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Answer, error)
	// GetWithAuthor retrieves an answer by ID together with the author's
	// username. Returns (nil, "", nil) if the answer is not found.
	GetWithAuthor(ctx context.Context, id int64) (*entity.Answer, string, error)
	// ListByQuestion retrieves all answers of a question with their author
	// usernames, ordered by create_date ASC with id ASC as a tie-break.
	ListByQuestion(ctx context.Context, questionID int64) ([]AnswerWithAuthor, error)
	// Create persists a new answer and fills in the generated ID.
	Create(ctx context.Context, answer *entity.Answer) error
	// Update overwrites content and modify_date of an existing answer.
	Update(ctx context.Context, answer *entity.Answer) error
	// Delete removes a single answer.
	Delete(ctx context.Context, id int64) error
}
