package question

import (
	"log/slog"
	"net/http"
	"time"

	"qna-board/internal/common/pagination"
	"qna-board/internal/handler/http/requestid"
	"qna-board/internal/handler/http/respond"
	"qna-board/internal/observability/logging"
	quesUC "qna-board/internal/usecase/question"
)

type ListHandler struct {
	Svc           *quesUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP returns one page of questions, newest first.
// The page query parameter is zero-based; the page size is fixed by
// configuration.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	logger.Info("Paginated question list request",
		"page", params.Page,
		"request_id", reqID)

	result, err := h.Svc.ListPage(ctx, params)
	if err != nil {
		logger.Error("Failed to list questions",
			"error", err.Error(),
			"page", params.Page,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, DTO{
			ID:         item.Question.ID,
			Subject:    item.Question.Subject,
			Content:    item.Question.Content,
			Author:     item.AuthorName,
			CreateDate: item.Question.CreateDate,
			ModifyDate: item.Question.ModifyDate,
		})
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("Paginated response",
		"page", params.Page,
		"returned_count", len(dtos),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
