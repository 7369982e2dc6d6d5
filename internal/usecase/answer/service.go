package answer

import (
	"context"
	"fmt"
	"time"

	"qna-board/internal/domain/authz"
	"qna-board/internal/domain/entity"
	"qna-board/internal/repository"
)

// CreateInput represents the input parameters for posting a new answer.
// Actor is the authenticated username performing the operation.
type CreateInput struct {
	QuestionID int64
	Content    string
	Actor      string
}

// ModifyInput represents the input parameters for editing an existing answer.
// Author and parent question are immutable.
type ModifyInput struct {
	ID      int64
	Content string
	Actor   string
}

// Service provides answer management use cases.
// Mutating operations re-load the target fresh and run the ownership check
// before touching the store.
type Service struct {
	Repo      repository.AnswerRepository
	Questions repository.QuestionRepository
	Users     repository.UserRepository
}

// Get retrieves a single answer by its ID.
// Returns ErrInvalidAnswerID if the ID is not positive.
// Returns ErrAnswerNotFound if the answer does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Answer, error) {
	if id <= 0 {
		return nil, ErrInvalidAnswerID
	}

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}
	if a == nil {
		return nil, ErrAnswerNotFound
	}
	return a, nil
}

// ListByQuestion retrieves all answers of a question with author usernames,
// in posting order.
// Returns ErrQuestionNotFound if the question does not exist.
func (s *Service) ListByQuestion(ctx context.Context, questionID int64) ([]repository.AnswerWithAuthor, error) {
	if questionID <= 0 {
		return nil, ErrQuestionNotFound
	}

	q, err := s.Questions.Get(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	answers, err := s.Repo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}

// Create posts a new answer to a question, authored by the actor.
// The parent question must exist at creation time.
// Any authenticated actor may create; no ownership check applies here.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Answer, error) {
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	q, err := s.Questions.Get(ctx, in.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	author, err := s.Users.GetByUsername(ctx, in.Actor)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}

	a := &entity.Answer{
		QuestionID: q.ID,
		AuthorID:   author.ID,
		Content:    in.Content,
		CreateDate: time.Now(),
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	return a, nil
}

// Modify edits the content of an existing answer.
// The target is re-loaded fresh and the ownership check runs before any
// mutation; on denial the answer is left unchanged and a PermissionError
// naming the "modify" action is returned.
// Returns ErrAnswerNotFound if the answer does not exist.
func (s *Service) Modify(ctx context.Context, in ModifyInput) error {
	if in.ID <= 0 {
		return ErrInvalidAnswerID
	}

	a, owner, err := s.Repo.GetWithAuthor(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get answer: %w", err)
	}
	if a == nil {
		return ErrAnswerNotFound
	}

	if err := authz.Authorize(in.Actor, owner, authz.ActionModify); err != nil {
		return err
	}

	if err := entity.ValidateContent(in.Content); err != nil {
		return err
	}

	now := time.Now()
	a.Content = in.Content
	a.ModifyDate = &now

	if err := s.Repo.Update(ctx, a); err != nil {
		return fmt.Errorf("update answer: %w", err)
	}
	return nil
}

// Delete removes a single answer.
// The target is re-loaded fresh and the ownership check runs before the
// removal; on denial a PermissionError naming the "delete" action is returned.
// Returns ErrAnswerNotFound if the answer does not exist.
func (s *Service) Delete(ctx context.Context, id int64, actor string) error {
	if id <= 0 {
		return ErrInvalidAnswerID
	}

	a, owner, err := s.Repo.GetWithAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("get answer: %w", err)
	}
	if a == nil {
		return ErrAnswerNotFound
	}

	if err := authz.Authorize(actor, owner, authz.ActionDelete); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	return nil
}
