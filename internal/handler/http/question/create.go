package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"qna-board/internal/domain/entity"
	"qna-board/internal/handler/http/auth"
	"qna-board/internal/handler/http/respond"
	"qna-board/internal/observability/metrics"
	quesUC "qna-board/internal/usecase/question"
)

type CreateHandler struct{ Svc *quesUC.Service }

// ServeHTTP posts a new question authored by the authenticated user.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q, err := h.Svc.Create(r.Context(), quesUC.CreateInput{
		Subject: req.Subject,
		Content: req.Content,
		Actor:   actor,
	})
	if err != nil {
		var valErr *entity.ValidationError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, quesUC.ErrAuthorNotFound):
			code = http.StatusNotFound
		case errors.As(err, &valErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordQuestionCreated()

	respond.JSON(w, http.StatusCreated, DTO{
		ID:         q.ID,
		Subject:    q.Subject,
		Content:    q.Content,
		Author:     actor,
		CreateDate: q.CreateDate,
		ModifyDate: q.ModifyDate,
	})
}
