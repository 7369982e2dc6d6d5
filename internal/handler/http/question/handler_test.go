package question_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"qna-board/internal/common/pagination"
	"qna-board/internal/domain/entity"
	"qna-board/internal/handler/http/auth"
	hquestion "qna-board/internal/handler/http/question"
	"qna-board/internal/repository"
	quesUC "qna-board/internal/usecase/question"
)

type stubQuestionRepo struct {
	data    map[int64]*entity.Question
	authors map[int64]string
	nextID  int64
	err     error
}

func newQuestionStub() *stubQuestionRepo {
	return &stubQuestionRepo{
		data:    map[int64]*entity.Question{},
		authors: map[int64]string{},
		nextID:  1,
	}
}

func (s *stubQuestionRepo) Get(_ context.Context, id int64) (*entity.Question, error) {
	return s.data[id], s.err
}

func (s *stubQuestionRepo) GetWithAuthor(_ context.Context, id int64) (*entity.Question, string, error) {
	q := s.data[id]
	if q == nil {
		return nil, "", s.err
	}
	return q, s.authors[id], s.err
}

func (s *stubQuestionRepo) ListPaginated(_ context.Context, offset, limit int) ([]repository.QuestionWithAuthor, error) {
	return nil, s.err
}

func (s *stubQuestionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func (s *stubQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	if s.err != nil {
		return s.err
	}
	q.ID = s.nextID
	s.nextID++
	s.data[q.ID] = q
	return nil
}

func (s *stubQuestionRepo) Update(_ context.Context, q *entity.Question) error {
	if s.err != nil {
		return s.err
	}
	s.data[q.ID] = q
	return nil
}

func (s *stubQuestionRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	delete(s.authors, id)
	return nil
}

type stubUserRepo struct {
	byName map[string]*entity.User
}

func (s *stubUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range s.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.byName[username], nil
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	s.byName[u.Username] = u
	return nil
}

func (s *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.byName[username]
	return ok, nil
}

func (s *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range s.byName {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newService(repo *stubQuestionRepo, usernames ...string) *quesUC.Service {
	users := &stubUserRepo{byName: map[string]*entity.User{}}
	for i, name := range usernames {
		users.byName[name] = &entity.User{ID: int64(i + 1), Username: name}
	}
	return &quesUC.Service{Repo: repo, Users: users, Cfg: pagination.DefaultConfig()}
}

func seedQuestion(repo *stubQuestionRepo, owner, subject string) *entity.Question {
	q := &entity.Question{
		ID:         repo.nextID,
		AuthorID:   1,
		Subject:    subject,
		Content:    "content",
		CreateDate: time.Now(),
	}
	repo.nextID++
	repo.data[q.ID] = q
	repo.authors[q.ID] = owner
	return q
}

func asUser(r *http.Request, user string) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), user))
}

func TestCreateHandler(t *testing.T) {
	repo := newQuestionStub()
	h := hquestion.CreateHandler{Svc: newService(repo, "alice")}

	t.Run("created", func(t *testing.T) {
		body := strings.NewReader(`{"subject":"How?","content":"Like this."}`)
		req := asUser(httptest.NewRequest("POST", "/questions", body), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, want 201, body=%s", rec.Code, rec.Body.String())
		}
		var dto hquestion.DTO
		if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if dto.Author != "alice" || dto.Subject != "How?" {
			t.Errorf("unexpected dto: %+v", dto)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		body := strings.NewReader(`{"subject":"s","content":"c"}`)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/questions", body))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"subject":"","content":"c"}`)
		req := asUser(httptest.NewRequest("POST", "/questions", body), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", rec.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := newQuestionStub()
		repo.err = errors.New("connection refused")
		h := hquestion.CreateHandler{Svc: newService(repo, "alice")}

		body := strings.NewReader(`{"subject":"How?","content":"Like this."}`)
		req := asUser(httptest.NewRequest("POST", "/questions", body), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("code = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "connection refused") {
			t.Errorf("response leaks storage detail: %s", rec.Body.String())
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("owner may edit", func(t *testing.T) {
		repo := newQuestionStub()
		h := hquestion.UpdateHandler{Svc: newService(repo, "alice")}
		q := seedQuestion(repo, "alice", "old")

		body := strings.NewReader(`{"subject":"new","content":"new content"}`)
		req := asUser(httptest.NewRequest("PUT", "/questions/1", body), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %d, want 204, body=%s", rec.Code, rec.Body.String())
		}
		if repo.data[q.ID].Subject != "new" {
			t.Errorf("subject not updated")
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		repo := newQuestionStub()
		h := hquestion.UpdateHandler{Svc: newService(repo, "alice", "bob")}
		q := seedQuestion(repo, "alice", "alice's question")

		body := strings.NewReader(`{"subject":"hijacked","content":"hijacked"}`)
		req := asUser(httptest.NewRequest("PUT", "/questions/1", body), "bob")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("code = %d, want 403", rec.Code)
		}
		if repo.data[q.ID].Subject != "alice's question" {
			t.Errorf("question mutated despite 403")
		}
	})

	t.Run("not found", func(t *testing.T) {
		h := hquestion.UpdateHandler{Svc: newService(newQuestionStub(), "alice")}

		body := strings.NewReader(`{"subject":"s","content":"c"}`)
		req := asUser(httptest.NewRequest("PUT", "/questions/42", body), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %d, want 404", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := hquestion.UpdateHandler{Svc: newService(newQuestionStub(), "alice")}

		body := strings.NewReader(`{"subject":"s","content":"c"}`)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("PUT", "/questions/1", body))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := newQuestionStub()
		h := hquestion.UpdateHandler{Svc: newService(repo, "alice")}
		seedQuestion(repo, "alice", "old")
		repo.err = errors.New("connection refused")

		body := strings.NewReader(`{"subject":"new","content":"new content"}`)
		req := asUser(httptest.NewRequest("PUT", "/questions/1", body), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("code = %d, want 500", rec.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("owner may delete", func(t *testing.T) {
		repo := newQuestionStub()
		h := hquestion.DeleteHandler{Svc: newService(repo, "alice")}
		q := seedQuestion(repo, "alice", "to remove")

		req := asUser(httptest.NewRequest("DELETE", "/questions/1", nil), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %d, want 204", rec.Code)
		}
		if _, exists := repo.data[q.ID]; exists {
			t.Errorf("question still present")
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		repo := newQuestionStub()
		h := hquestion.DeleteHandler{Svc: newService(repo, "alice", "bob")}
		q := seedQuestion(repo, "alice", "alice's question")

		req := asUser(httptest.NewRequest("DELETE", "/questions/1", nil), "bob")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("code = %d, want 403", rec.Code)
		}
		if _, exists := repo.data[q.ID]; !exists {
			t.Errorf("question removed despite 403")
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		h := hquestion.DeleteHandler{Svc: newService(newQuestionStub(), "alice")}

		req := asUser(httptest.NewRequest("DELETE", "/questions/abc", nil), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", rec.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := newQuestionStub()
		h := hquestion.DeleteHandler{Svc: newService(repo, "alice")}
		seedQuestion(repo, "alice", "to remove")
		repo.err = errors.New("connection refused")

		req := asUser(httptest.NewRequest("DELETE", "/questions/1", nil), "alice")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("code = %d, want 500", rec.Code)
		}
	})
}
