package question

import (
	"context"
	"fmt"
	"time"

	"qna-board/internal/common/pagination"
	"qna-board/internal/domain/authz"
	"qna-board/internal/domain/entity"
	"qna-board/internal/repository"
)

// CreateInput represents the input parameters for posting a new question.
// Actor is the authenticated username performing the operation.
type CreateInput struct {
	Subject string
	Content string
	Actor   string
}

// ModifyInput represents the input parameters for editing an existing question.
// Subject and content are overwritten as a pair; author and timestamps of
// creation are immutable.
type ModifyInput struct {
	ID      int64
	Subject string
	Content string
	Actor   string
}

// Service provides question management use cases.
// Mutating operations re-load the target fresh and run the ownership check
// before touching the store.
type Service struct {
	Repo  repository.QuestionRepository
	Users repository.UserRepository
	Cfg   pagination.Config
}

// PaginatedResult represents the result of a paginated question query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.QuestionWithAuthor
	Pagination pagination.Metadata
}

// pageSize returns the configured page size, falling back to the default.
func (s *Service) pageSize() int {
	if s.Cfg.PageSize > 0 {
		return s.Cfg.PageSize
	}
	return pagination.DefaultConfig().PageSize
}

// ListPage retrieves one page of questions, newest first.
// Pages are zero-based with a fixed size; ordering is create_date descending
// with id descending as a deterministic tie-break.
func (s *Service) ListPage(ctx context.Context, params pagination.Params) (*PaginatedResult, error) {
	size := s.pageSize()
	offset := pagination.CalculateOffset(params.Page, size)

	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	questions, err := s.Repo.ListPaginated(ctx, offset, size)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return &PaginatedResult{
		Data: questions,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			PageSize:   size,
			TotalPages: pagination.CalculateTotalPages(total, size),
		},
	}, nil
}

// Get retrieves a single question by its ID.
// Returns ErrInvalidQuestionID if the ID is not positive.
// Returns ErrQuestionNotFound if the question does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Question, error) {
	if id <= 0 {
		return nil, ErrInvalidQuestionID
	}

	q, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	return q, nil
}

// GetWithAuthor retrieves a single question by its ID along with the author's
// username.
// Returns ErrInvalidQuestionID if the ID is not positive.
// Returns ErrQuestionNotFound if the question does not exist.
func (s *Service) GetWithAuthor(ctx context.Context, id int64) (*entity.Question, string, error) {
	if id <= 0 {
		return nil, "", ErrInvalidQuestionID
	}

	q, authorName, err := s.Repo.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get question with author: %w", err)
	}
	if q == nil {
		return nil, "", ErrQuestionNotFound
	}
	return q, authorName, nil
}

// Create posts a new question authored by the actor.
// It validates subject and content, stamps the creation time and persists.
// Any authenticated actor may create; no ownership check applies here.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Question, error) {
	if err := entity.ValidateSubject(in.Subject); err != nil {
		return nil, err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	author, err := s.Users.GetByUsername(ctx, in.Actor)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	q := &entity.Question{
		AuthorID:   author.ID,
		Subject:    in.Subject,
		Content:    in.Content,
		CreateDate: time.Now(),
	}

	if err := s.Repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// Modify edits the subject and content of an existing question.
// The target is re-loaded fresh and the ownership check runs before any
// mutation; on denial the question is left unchanged and a PermissionError
// naming the "modify" action is returned.
// Returns ErrQuestionNotFound if the question does not exist.
func (s *Service) Modify(ctx context.Context, in ModifyInput) error {
	if in.ID <= 0 {
		return ErrInvalidQuestionID
	}

	q, owner, err := s.Repo.GetWithAuthor(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return ErrQuestionNotFound
	}

	if err := authz.Authorize(in.Actor, owner, authz.ActionModify); err != nil {
		return err
	}

	if err := entity.ValidateSubject(in.Subject); err != nil {
		return err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return err
	}

	now := time.Now()
	q.Subject = in.Subject
	q.Content = in.Content
	q.ModifyDate = &now

	if err := s.Repo.Update(ctx, q); err != nil {
		return fmt.Errorf("update question: %w", err)
	}
	return nil
}

// Delete removes a question and all of its answers.
// The target is re-loaded fresh and the ownership check runs before the
// removal; on denial a PermissionError naming the "delete" action is returned.
// Returns ErrQuestionNotFound if the question does not exist.
func (s *Service) Delete(ctx context.Context, id int64, actor string) error {
	if id <= 0 {
		return ErrInvalidQuestionID
	}

	q, owner, err := s.Repo.GetWithAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return ErrQuestionNotFound
	}

	if err := authz.Authorize(actor, owner, authz.ActionDelete); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}
