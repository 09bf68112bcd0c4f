package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reqwise.app/intake/internal/http/handler"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/report"
	"reqwise.app/intake/internal/store"
)

var _ = Describe("ReportHandler", func() {
	var (
		router *gin.Engine
		svc    *mockReportService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockReportService{}
		h := handler.NewReportHandler(svc)
		router.POST("/api/generate-report", h.Generate)
	})

	post := func(body any) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/generate-report", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns the assembled document and filename", func() {
		svc.generateFn = func(_ context.Context, projectID int64, clientName, clientEmail string) (report.Document, string, error) {
			Expect(projectID).To(Equal(int64(42)))
			Expect(clientName).To(Equal("Jane Doe"))
			return report.Document{
				Title:        "Project Proposal: Acme Store",
				ProjectName:  "Acme Store",
				Cost:         173,
				TimelineDays: 4,
				Sections: []report.Section{
					{Title: "Functional Requirements", Items: []string{"catalog"}},
				},
			}, "acme-store-proposal", nil
		}

		w := post(map[string]any{
			"projectId":   "42",
			"clientName":  "Jane Doe",
			"clientEmail": "jane@example.com",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeTrue())
		Expect(resp["filename"]).To(Equal("acme-store-proposal"))
		doc := resp["report"].(map[string]any)
		Expect(doc["cost"]).To(BeNumerically("==", 173))
		Expect(doc["sections"]).To(HaveLen(1))
	})

	It("builds from an inline extraction payload without touching storage", func() {
		svc.generateFromSummaryFn = func(summary model.Summary, _, _, projectName string) (report.Document, string) {
			Expect(summary.Functional).To(Equal([]string{"catalog"}))
			Expect(projectName).To(Equal("Acme Store"))
			return report.Document{Title: "Project Proposal: Acme Store"}, "acme-store-proposal"
		}
		svc.generateFn = func(_ context.Context, _ int64, _, _ string) (report.Document, string, error) {
			Fail("stored-summary path must not be used")
			return report.Document{}, "", nil
		}

		w := post(map[string]any{
			"extractedData": map[string]any{"functional": []string{"catalog"}},
			"projectName":   "Acme Store",
		})

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("requires a projectId or an extraction payload", func() {
		w := post(map[string]any{"clientName": "Jane"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown project", func() {
		svc.generateFn = func(_ context.Context, _ int64, _, _ string) (report.Document, string, error) {
			return report.Document{}, "", store.ErrNotFound
		}

		w := post(map[string]any{"projectId": "42"})

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("rejects an invalid client email", func() {
		w := post(map[string]any{"projectId": "42", "clientEmail": "not-an-email"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
