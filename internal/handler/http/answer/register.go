package answer

import (
	"net/http"

	"qna-board/internal/handler/http/auth"
	ansUC "qna-board/internal/usecase/answer"
)

// Register registers all answer-related HTTP handlers with the given mux.
// All answer routes mutate content and require authentication; edits and
// deletes additionally require ownership, enforced in the service layer.
func Register(mux *http.ServeMux, svc *ansUC.Service) {
	mux.Handle("POST   /answers", auth.Authn(CreateHandler{Svc: svc}))
	mux.Handle("PUT    /answers/", auth.Authn(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /answers/", auth.Authn(DeleteHandler{Svc: svc}))
}
