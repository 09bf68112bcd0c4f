package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"reqwise.app/intake/internal/http/dto"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/report"
	"reqwise.app/intake/internal/store"
)

// ReportService is the slice of the report service this handler needs.
type ReportService interface {
	Generate(ctx context.Context, projectID int64, clientName, clientEmail string) (report.Document, string, error)
	GenerateFromSummary(summary model.Summary, clientName, clientEmail, projectName string) (report.Document, string)
}

type ReportHandler struct {
	reportService ReportService
}

func NewReportHandler(reportService ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if req.ExtractedData != nil {
		doc, filename := h.reportService.GenerateFromSummary(*req.ExtractedData, req.ClientName, req.ClientEmail, req.ProjectName)
		c.JSON(http.StatusOK, dto.ToReportResponse(doc, filename))
		return
	}

	if req.ProjectID == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("projectId or extractedData is required"))
		return
	}

	doc, filename, err := h.reportService.Generate(ctx, *req.ProjectID, req.ClientName, req.ClientEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("project not found"))
			return
		}
		slog.ErrorContext(ctx, "report generation failed", "error", err, "project_id", *req.ProjectID)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to generate report"))
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(doc, filename))
}
