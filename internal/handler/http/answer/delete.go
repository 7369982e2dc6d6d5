package answer

import (
	"errors"
	"net/http"

	"qna-board/internal/domain/authz"
	"qna-board/internal/handler/http/auth"
	"qna-board/internal/handler/http/pathutil"
	"qna-board/internal/handler/http/respond"
	ansUC "qna-board/internal/usecase/answer"
)

type DeleteHandler struct{ Svc *ansUC.Service }

// ServeHTTP removes a single answer.
// Only the answer's author may delete it.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/answers/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, actor); err != nil {
		var permErr *authz.PermissionError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ansUC.ErrAnswerNotFound):
			code = http.StatusNotFound
		case errors.As(err, &permErr):
			code = http.StatusForbidden
		case errors.Is(err, ansUC.ErrInvalidAnswerID):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
