package repository

import (
	"context"

	"qna-board/internal/domain/entity"
)

// QuestionWithAuthor represents a question along with its author's username.
type QuestionWithAuthor struct {
	Question   *entity.Question
	AuthorName string
}

// QuestionRepository provides access to stored questions.
type QuestionRepository interface {
	// Get retrieves a question by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Question, error)
	// GetWithAuthor retrieves a question by ID together with the author's
	// username. Returns (nil, "", nil) if the question is not found.
	GetWithAuthor(ctx context.Context, id int64) (*entity.Question, string, error)
	// ListPaginated retrieves a page of questions with their author usernames,
	// ordered by create_date DESC with id DESC as a deterministic tie-break.
	// Parameters:
	//   - offset: Number of rows to skip (calculated from page number)
	//   - limit: Maximum number of rows to return
	ListPaginated(ctx context.Context, offset, limit int) ([]QuestionWithAuthor, error)
	// Count returns the total number of questions, used for pagination metadata.
	Count(ctx context.Context) (int64, error)
	// Create persists a new question and fills in the generated ID.
	Create(ctx context.Context, question *entity.Question) error
	// Update overwrites subject, content and modify_date of an existing question.
	Update(ctx context.Context, question *entity.Question) error
	// Delete removes a question and all of its answers in a single
	// transaction. The answer cascade is explicit; the schema does not rely
	// on ON DELETE CASCADE.
	Delete(ctx context.Context, id int64) error
}
