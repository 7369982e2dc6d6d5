package question

import (
	"log/slog"
	"net/http"

	"qna-board/internal/common/pagination"
	"qna-board/internal/handler/http/auth"
	ansUC "qna-board/internal/usecase/answer"
	quesUC "qna-board/internal/usecase/question"
)

// Register registers all question-related HTTP handlers with the given mux.
// Reading is public; creating, editing and deleting require authentication,
// and edits and deletes additionally require ownership, enforced in the
// service layer.
func Register(mux *http.ServeMux, svc *quesUC.Service, answers *ansUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /questions", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /questions/", GetHandler{Svc: svc, Answers: answers})

	mux.Handle("POST   /questions", auth.Authn(CreateHandler{Svc: svc}))
	mux.Handle("PUT    /questions/", auth.Authn(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /questions/", auth.Authn(DeleteHandler{Svc: svc}))
}
