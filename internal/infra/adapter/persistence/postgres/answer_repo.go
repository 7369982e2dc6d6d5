package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"qna-board/internal/domain/entity"
	"qna-board/internal/repository"
)

type AnswerRepo struct {
	db DB
}

func NewAnswerRepo(db DB) repository.AnswerRepository {
	return &AnswerRepo{db: db}
}

func (repo *AnswerRepo) Get(ctx context.Context, id int64) (*entity.Answer, error) {
	const query = `
SELECT id, question_id, author_id, content, create_date, modify_date
FROM answers
WHERE id = $1
LIMIT 1`
	var a entity.Answer
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Content, &a.CreateDate, &a.ModifyDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

func (repo *AnswerRepo) GetWithAuthor(ctx context.Context, id int64) (*entity.Answer, string, error) {
	const query = `
SELECT a.id, a.question_id, a.author_id, a.content, a.create_date, a.modify_date, u.username
FROM answers a
INNER JOIN users u ON a.author_id = u.id
WHERE a.id = $1
LIMIT 1`
	var a entity.Answer
	var authorName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Content, &a.CreateDate, &a.ModifyDate, &authorName)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("GetWithAuthor: %w", err)
	}
	return &a, authorName, nil
}

// ListByQuestion retrieves the answers of a question in posting order.
func (repo *AnswerRepo) ListByQuestion(ctx context.Context, questionID int64) ([]repository.AnswerWithAuthor, error) {
	const query = `
SELECT a.id, a.question_id, a.author_id, a.content, a.create_date, a.modify_date, u.username
FROM answers a
INNER JOIN users u ON a.author_id = u.id
WHERE a.question_id = $1
ORDER BY a.create_date ASC, a.id ASC`

	rows, err := repo.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("ListByQuestion: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.AnswerWithAuthor, 0, 16)
	for rows.Next() {
		var a entity.Answer
		var authorName string
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Content,
			&a.CreateDate, &a.ModifyDate, &authorName); err != nil {
			return nil, fmt.Errorf("ListByQuestion: Scan: %w", err)
		}
		result = append(result, repository.AnswerWithAuthor{
			Answer:     &a,
			AuthorName: authorName,
		})
	}
	return result, rows.Err()
}

func (repo *AnswerRepo) Create(ctx context.Context, answer *entity.Answer) error {
	const query = `
INSERT INTO answers (question_id, author_id, content, create_date)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		answer.QuestionID, answer.AuthorID, answer.Content, answer.CreateDate).
		Scan(&answer.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AnswerRepo) Update(ctx context.Context, answer *entity.Answer) error {
	const query = `
UPDATE answers
SET content = $1, modify_date = $2
WHERE id = $3`
	if _, err := repo.db.ExecContext(ctx, query,
		answer.Content, answer.ModifyDate, answer.ID); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *AnswerRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM answers WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
