package dto

import (
	"reqwise.app/intake/internal/model"
)

type GenerateSummaryRequest struct {
	ProjectID int64            `json:"projectId,string" binding:"required"`
	History   []HistoryMessage `json:"history"`
}

type SummaryResponse struct {
	Success bool          `json:"success"`
	Summary model.Summary `json:"summary"`
}
