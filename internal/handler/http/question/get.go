package question

import (
	"errors"
	"net/http"

	"qna-board/internal/handler/http/pathutil"
	"qna-board/internal/handler/http/respond"
	ansUC "qna-board/internal/usecase/answer"
	quesUC "qna-board/internal/usecase/question"
)

type GetHandler struct {
	Svc     *quesUC.Service
	Answers *ansUC.Service
}

// ServeHTTP returns a single question with its author and all answers.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/questions/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q, authorName, err := h.Svc.GetWithAuthor(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, quesUC.ErrInvalidQuestionID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, quesUC.ErrQuestionNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	answers, err := h.Answers.ListByQuestion(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := DetailDTO{
		DTO: DTO{
			ID:         q.ID,
			Subject:    q.Subject,
			Content:    q.Content,
			Author:     authorName,
			CreateDate: q.CreateDate,
			ModifyDate: q.ModifyDate,
		},
		Answers: make([]AnswerDTO, 0, len(answers)),
	}
	for _, item := range answers {
		out.Answers = append(out.Answers, AnswerDTO{
			ID:         item.Answer.ID,
			Content:    item.Answer.Content,
			Author:     item.AuthorName,
			CreateDate: item.Answer.CreateDate,
			ModifyDate: item.Answer.ModifyDate,
		})
	}

	respond.JSON(w, http.StatusOK, out)
}
