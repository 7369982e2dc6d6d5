package answer

import (
	"encoding/json"
	"errors"
	"net/http"

	"qna-board/internal/domain/entity"
	"qna-board/internal/handler/http/auth"
	"qna-board/internal/handler/http/respond"
	"qna-board/internal/observability/metrics"
	ansUC "qna-board/internal/usecase/answer"
)

type CreateHandler struct{ Svc *ansUC.Service }

// ServeHTTP posts a new answer to a question, authored by the authenticated
// user. The parent question must exist.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req struct {
		QuestionID int64  `json:"question_id"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.QuestionID == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("question_id is required"))
		return
	}

	a, err := h.Svc.Create(r.Context(), ansUC.CreateInput{
		QuestionID: req.QuestionID,
		Content:    req.Content,
		Actor:      actor,
	})
	if err != nil {
		var valErr *entity.ValidationError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ansUC.ErrQuestionNotFound), errors.Is(err, ansUC.ErrAuthorNotFound):
			code = http.StatusNotFound
		case errors.As(err, &valErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordAnswerCreated()

	respond.JSON(w, http.StatusCreated, DTO{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
		Author:     actor,
		CreateDate: a.CreateDate,
		ModifyDate: a.ModifyDate,
	})
}
