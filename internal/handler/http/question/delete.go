package question

import (
	"errors"
	"net/http"

	"qna-board/internal/domain/authz"
	"qna-board/internal/handler/http/auth"
	"qna-board/internal/handler/http/pathutil"
	"qna-board/internal/handler/http/respond"
	"qna-board/internal/observability/metrics"
	quesUC "qna-board/internal/usecase/question"
)

type DeleteHandler struct{ Svc *quesUC.Service }

// ServeHTTP removes a question and all of its answers.
// Only the question's author may delete it.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/questions/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, actor); err != nil {
		var permErr *authz.PermissionError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, quesUC.ErrQuestionNotFound):
			code = http.StatusNotFound
		case errors.As(err, &permErr):
			code = http.StatusForbidden
		case errors.Is(err, quesUC.ErrInvalidQuestionID):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordQuestionDeleted()

	w.WriteHeader(http.StatusNoContent)
}
