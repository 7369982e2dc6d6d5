package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"qna-board/internal/domain/entity"
	"qna-board/internal/handler/http/respond"
	"qna-board/internal/observability/metrics"
	userUC "qna-board/internal/usecase/user"
)

type SignUpHandler struct{ Svc *userUC.Service }

// ServeHTTP registers a new user account.
// Duplicate usernames or emails are rejected with 409 Conflict.
func (h SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.SignUp(r.Context(), userUC.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var valErr *entity.ValidationError
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, userUC.ErrDuplicateUser):
			code = http.StatusConflict
		case errors.As(err, &valErr):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordUserRegistered()

	respond.JSON(w, http.StatusCreated, DTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}
