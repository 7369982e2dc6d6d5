package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"qna-board/internal/domain/entity"
	"qna-board/internal/repository"
)

type QuestionRepo struct {
	db DB
}

func NewQuestionRepo(db DB) repository.QuestionRepository {
	return &QuestionRepo{db: db}
}

func (repo *QuestionRepo) Get(ctx context.Context, id int64) (*entity.Question, error) {
	const query = `
SELECT id, author_id, subject, content, create_date, modify_date
FROM questions
WHERE id = $1
LIMIT 1`
	var q entity.Question
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&q.ID, &q.AuthorID, &q.Subject, &q.Content, &q.CreateDate, &q.ModifyDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &q, nil
}

func (repo *QuestionRepo) GetWithAuthor(ctx context.Context, id int64) (*entity.Question, string, error) {
	const query = `
SELECT q.id, q.author_id, q.subject, q.content, q.create_date, q.modify_date, u.username
FROM questions q
INNER JOIN users u ON q.author_id = u.id
WHERE q.id = $1
LIMIT 1`
	var q entity.Question
	var authorName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&q.ID, &q.AuthorID, &q.Subject, &q.Content, &q.CreateDate, &q.ModifyDate, &authorName)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("GetWithAuthor: %w", err)
	}
	return &q, authorName, nil
}

// ListPaginated retrieves a page of questions with author usernames.
// The id DESC tie-break keeps the ordering deterministic when create_date
// values collide.
func (repo *QuestionRepo) ListPaginated(ctx context.Context, offset, limit int) ([]repository.QuestionWithAuthor, error) {
	const query = `
SELECT q.id, q.author_id, q.subject, q.content, q.create_date, q.modify_date, u.username
FROM questions q
INNER JOIN users u ON q.author_id = u.id
ORDER BY q.create_date DESC, q.id DESC
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.QuestionWithAuthor, 0, limit)
	for rows.Next() {
		var q entity.Question
		var authorName string
		if err := rows.Scan(&q.ID, &q.AuthorID, &q.Subject, &q.Content,
			&q.CreateDate, &q.ModifyDate, &authorName); err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		result = append(result, repository.QuestionWithAuthor{
			Question:   &q,
			AuthorName: authorName,
		})
	}
	return result, rows.Err()
}

// Count returns the total number of questions in the database.
func (repo *QuestionRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM questions`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	const query = `
INSERT INTO questions (author_id, subject, content, create_date)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		question.AuthorID, question.Subject, question.Content, question.CreateDate).
		Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *QuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	const query = `
UPDATE questions
SET subject = $1, content = $2, modify_date = $3
WHERE id = $4`
	if _, err := repo.db.ExecContext(ctx, query,
		question.Subject, question.Content, question.ModifyDate, question.ID); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

// Delete removes a question and its answers atomically. The cascade is a
// deliberate two-statement transaction; the schema carries no ON DELETE
// CASCADE so removal stays visible in application code.
func (repo *QuestionRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM answers WHERE question_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: answers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("Delete: question: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: commit: %w", err)
	}
	return nil
}
