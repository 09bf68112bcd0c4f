// Package report derives a client-facing proposal document from a committed
// summary. Rendering to a concrete format (PDF, HTML) is left to callers via
// the Renderer interface; this package only assembles the content.
package report

import (
	"fmt"
	"math"

	"reqwise.app/intake/common"
	"reqwise.app/intake/internal/model"
)

// Section is one titled block of the proposal document. Items holds bullet
// content; Body holds free text. A section carries one or the other.
type Section struct {
	Title string
	Body  string
	Items []string
}

// Document is the assembled proposal, ready to hand to a Renderer.
type Document struct {
	Title        string
	ClientName   string
	ClientEmail  string
	ProjectName  string
	Sections     []Section
	Cost         int
	TimelineDays int
}

// Renderer turns an assembled Document into bytes in some output format.
// Implementations live outside this package.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

const (
	hoursPerRequirement = 6
	hourlyRate          = 8
	overheadFactor      = 1.2
	daysPerRequirement  = 1.3
)

// CalculateCost estimates project cost from the functional requirement count.
func CalculateCost(functionalCount int) int {
	base := float64(functionalCount) * hoursPerRequirement * hourlyRate
	return int(math.Round(base * overheadFactor))
}

// CalculateTimeline estimates the delivery timeline in days.
func CalculateTimeline(functionalCount int) int {
	return int(math.Round(float64(functionalCount) * daysPerRequirement))
}

// SuggestedFilename derives a filesystem-safe name for the rendered document.
func SuggestedFilename(projectName string) string {
	slug, err := common.Slugify(projectName, "project")
	if err != nil {
		slug = "project"
	}
	return slug + "-proposal"
}

// Build assembles the proposal document from a summary and client details.
// Sections with no content are omitted.
func Build(summary model.Summary, clientName, clientEmail, projectName string) Document {
	doc := Document{
		Title:        fmt.Sprintf("Project Proposal: %s", projectName),
		ClientName:   clientName,
		ClientEmail:  clientEmail,
		ProjectName:  projectName,
		Cost:         CalculateCost(len(summary.Functional)),
		TimelineDays: CalculateTimeline(len(summary.Functional)),
	}

	if summary.Overview != "" {
		doc.Sections = append(doc.Sections, Section{Title: "Overview", Body: summary.Overview})
	}
	addList := func(title string, items []string) {
		if len(items) > 0 {
			doc.Sections = append(doc.Sections, Section{Title: title, Items: items})
		}
	}
	addList("Functional Requirements", summary.Functional)
	addList("Non-Functional Requirements", summary.NonFunctional)
	addList("Stakeholders", summary.Stakeholders)
	addList("User Stories", summary.UserStories)
	addList("Constraints", summary.Constraints)
	addList("Risks & Challenges", summary.Risks)
	if summary.Timeline != "" {
		doc.Sections = append(doc.Sections, Section{Title: "Timeline", Body: summary.Timeline})
	}
	if summary.CostEstimate != "" {
		doc.Sections = append(doc.Sections, Section{Title: "Cost Estimate", Body: summary.CostEstimate})
	}
	if summary.Summary != "" {
		doc.Sections = append(doc.Sections, Section{Title: "Summary", Body: summary.Summary})
	}

	return doc
}
