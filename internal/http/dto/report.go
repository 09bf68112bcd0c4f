package dto

import (
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/report"
)

// GenerateReportRequest accepts either a projectId (the committed summary is
// loaded) or an inline extractedData payload with an optional project name.
type GenerateReportRequest struct {
	ProjectID     *int64         `json:"projectId,string"`
	ExtractedData *model.Summary `json:"extractedData"`
	ProjectName   string         `json:"projectName"`
	ClientName    string         `json:"clientName"`
	ClientEmail   string         `json:"clientEmail" binding:"omitempty,email"`
}

type ReportSection struct {
	Title string   `json:"title"`
	Body  string   `json:"body,omitempty"`
	Items []string `json:"items,omitempty"`
}

type ReportDocument struct {
	Title        string          `json:"title"`
	ClientName   string          `json:"clientName,omitempty"`
	ClientEmail  string          `json:"clientEmail,omitempty"`
	ProjectName  string          `json:"projectName"`
	Sections     []ReportSection `json:"sections"`
	Cost         int             `json:"cost"`
	TimelineDays int             `json:"timelineDays"`
}

type ReportResponse struct {
	Success  bool           `json:"success"`
	Report   ReportDocument `json:"report"`
	Filename string         `json:"filename"`
}

func ToReportResponse(doc report.Document, filename string) ReportResponse {
	sections := make([]ReportSection, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, ReportSection{
			Title: s.Title,
			Body:  s.Body,
			Items: s.Items,
		})
	}
	return ReportResponse{
		Success: true,
		Report: ReportDocument{
			Title:        doc.Title,
			ClientName:   doc.ClientName,
			ClientEmail:  doc.ClientEmail,
			ProjectName:  doc.ProjectName,
			Sections:     sections,
			Cost:         doc.Cost,
			TimelineDays: doc.TimelineDays,
		},
		Filename: filename,
	}
}
