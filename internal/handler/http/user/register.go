package user

import (
	"net/http"

	userUC "qna-board/internal/usecase/user"
)

// Register registers account-related HTTP handlers with the given mux.
// Signup is public; a token for the new account is obtained via /auth/token.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("POST   /users", SignUpHandler{Svc: svc})
}
