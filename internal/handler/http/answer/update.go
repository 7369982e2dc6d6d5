package answer

import (
	"encoding/json"
	"errors"
	"net/http"

	"qna-board/internal/domain/authz"
	"qna-board/internal/domain/entity"
	"qna-board/internal/handler/http/auth"
	"qna-board/internal/handler/http/pathutil"
	"qna-board/internal/handler/http/respond"
	ansUC "qna-board/internal/usecase/answer"
)

type UpdateHandler struct{ Svc *ansUC.Service }

// ServeHTTP replaces the content of an existing answer.
// Only the answer's author may edit it.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Modify(r.Context(), ansUC.ModifyInput{
		ID:      id,
		Content: req.Content,
		Actor:   actor,
	})
	if err != nil {
		var permErr *authz.PermissionError
		var valErr *entity.ValidationError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ansUC.ErrAnswerNotFound):
			code = http.StatusNotFound
		case errors.As(err, &permErr):
			code = http.StatusForbidden
		case errors.As(err, &valErr), errors.Is(err, ansUC.ErrInvalidAnswerID):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
