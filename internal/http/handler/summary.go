package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"reqwise.app/intake/internal/http/dto"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/service"
	"reqwise.app/intake/internal/store"
)

// SummaryService is the slice of the summary service this handler needs.
type SummaryService interface {
	Generate(ctx context.Context, projectID int64, history []model.ConversationMessage) (model.Summary, error)
}

type SummaryHandler struct {
	summaryService SummaryService
}

func NewSummaryHandler(summaryService SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Generate runs extraction over the project's transcript and commits the
// summary. The transcript is only cleared when a non-empty summary commits.
func (h *SummaryHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	summary, err := h.summaryService.Generate(ctx, req.ProjectID, dto.ToConversation(req.History))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoHistory):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("project not found"))
		default:
			slog.ErrorContext(ctx, "summary generation failed", "error", err, "project_id", req.ProjectID)
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to generate summary"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{Success: true, Summary: summary})
}
