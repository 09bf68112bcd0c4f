package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/service"
	"reqwise.app/intake/internal/store"
)

var _ = Describe("ReportService", func() {
	const projectID int64 = 11

	var (
		ctx      context.Context
		projects *memProjectStore
		svc      *service.ReportService
	)

	BeforeEach(func() {
		ctx = context.Background()
		projects = newMemProjectStore()
		svc = service.NewReportService(projects)
	})

	It("builds a proposal from the committed summary", func() {
		summary := `{"overview":"","functional":["catalog","checkout","search"],"nonFunctional":["uptime"],"stakeholders":["Owner"],"userStories":[],"constraints":[],"risks":[],"timeline":"3-4 months","costEstimate":"$50,000","summary":""}`
		projects.projects[projectID] = &model.Project{ID: projectID, Name: "Acme Store", Summary: &summary}

		doc, filename, err := svc.Generate(ctx, projectID, "Jane Doe", "jane@example.com")

		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Title).To(Equal("Project Proposal: Acme Store"))
		Expect(doc.ClientName).To(Equal("Jane Doe"))
		Expect(doc.Cost).To(Equal(173))
		Expect(doc.TimelineDays).To(Equal(4))
		Expect(filename).To(Equal("acme-store-proposal"))

		titles := make([]string, 0, len(doc.Sections))
		for _, s := range doc.Sections {
			titles = append(titles, s.Title)
		}
		Expect(titles).To(ContainElements("Functional Requirements", "Timeline", "Cost Estimate"))
	})

	It("refuses to report on a project without a summary", func() {
		projects.projects[projectID] = &model.Project{ID: projectID, Name: "Acme Store"}

		_, _, err := svc.Generate(ctx, projectID, "", "")
		Expect(err).To(HaveOccurred())
	})

	It("fails for an unknown project", func() {
		_, _, err := svc.Generate(ctx, 999, "", "")
		Expect(err).To(MatchError(store.ErrNotFound))
	})

	Describe("GenerateFromSummary", func() {
		It("builds from the supplied summary without storage", func() {
			summary := model.EmptySummary()
			summary.Functional = []string{"catalog"}

			doc, filename := svc.GenerateFromSummary(summary, "Jane", "jane@example.com", "Acme Store")

			Expect(doc.Title).To(Equal("Project Proposal: Acme Store"))
			Expect(filename).To(Equal("acme-store-proposal"))
		})

		It("defaults the project name when none is given", func() {
			doc, filename := svc.GenerateFromSummary(model.EmptySummary(), "", "", "")

			Expect(doc.Title).To(Equal("Project Proposal: Project"))
			Expect(filename).To(Equal("project-proposal"))
		})
	})
})
