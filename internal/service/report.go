package service

import (
	"context"
	"encoding/json"
	"fmt"

	"reqwise.app/intake/common/logger"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/report"
	"reqwise.app/intake/internal/store"
)

// ReportService builds proposal documents from committed summaries.
type ReportService struct {
	projects store.ProjectStore
}

func NewReportService(projects store.ProjectStore) *ReportService {
	return &ReportService{projects: projects}
}

// Generate loads the project's committed summary and assembles the proposal
// document. A project that has not been summarized yet cannot produce a
// report.
func (s *ReportService) Generate(ctx context.Context, projectID int64, clientName, clientEmail string) (report.Document, string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ProjectID: logger.Ptr(projectID),
		Component: "intake.service.report",
	})

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return report.Document{}, "", fmt.Errorf("loading project %d: %w", projectID, err)
	}
	if project.Summary == nil || *project.Summary == "" {
		return report.Document{}, "", fmt.Errorf("project %d has no committed summary", projectID)
	}

	var summary model.Summary
	if err := json.Unmarshal([]byte(*project.Summary), &summary); err != nil {
		return report.Document{}, "", fmt.Errorf("parsing stored summary: %w", err)
	}

	doc := report.Build(summary, clientName, clientEmail, project.Name)
	return doc, report.SuggestedFilename(project.Name), nil
}

// GenerateFromSummary builds a proposal from a caller-supplied summary, for
// clients that hold the extraction payload instead of a project reference.
func (s *ReportService) GenerateFromSummary(summary model.Summary, clientName, clientEmail, projectName string) (report.Document, string) {
	if projectName == "" {
		projectName = "Project"
	}
	doc := report.Build(summary, clientName, clientEmail, projectName)
	return doc, report.SuggestedFilename(projectName)
}
