package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reqwise.app/intake/common/id"
	"reqwise.app/intake/common/llm"
	"reqwise.app/intake/internal/interview"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/service"
	"reqwise.app/intake/internal/store"
)

type stubGateway struct {
	completeFn func(ctx context.Context, req llm.Request) (string, error)
	lastReq    llm.Request
}

func (s *stubGateway) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.lastReq = req
	if s.completeFn != nil {
		return s.completeFn(ctx, req)
	}
	return "", errors.New("not implemented")
}

var _ = Describe("ChatService", func() {
	const projectID int64 = 7

	var (
		ctx      context.Context
		turns    *memTurnStore
		projects *memProjectStore
		gateway  *stubGateway
		svc      *service.ChatService
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())

		turns = &memTurnStore{}
		projects = newMemProjectStore()
		projects.projects[projectID] = &model.Project{ID: projectID, Name: "Acme Store"}
		gateway = &stubGateway{}

		svc = service.NewChatService(turns, projects, interview.NewDriver(gateway))
	})

	Describe("Converse", func() {
		It("returns the bot's next turn", func() {
			gateway.completeFn = func(_ context.Context, _ llm.Request) (string, error) {
				return "What products will you sell?", nil
			}

			reply, err := svc.Converse(ctx, projectID, nil, "I need an online store")

			Expect(err).NotTo(HaveOccurred())
			Expect(reply).To(Equal("What products will you sell?"))
			Expect(gateway.lastReq.System).To(ContainSubstring("Acme Store"))
		})

		It("loads the stored transcript when no history is supplied", func() {
			turns.turns = []model.Turn{
				{ID: 1, ProjectID: projectID, Role: model.TurnRoleUser, Content: "hello"},
				{ID: 2, ProjectID: projectID, Role: model.TurnRoleBot, Content: "hi, tell me about your project"},
			}
			gateway.completeFn = func(_ context.Context, _ llm.Request) (string, error) {
				return "ok", nil
			}

			_, err := svc.Converse(ctx, projectID, nil, "it is a store")

			Expect(err).NotTo(HaveOccurred())
			Expect(gateway.lastReq.Messages).To(HaveLen(3))
			Expect(gateway.lastReq.Messages[1].Role).To(Equal("assistant"))
		})

		It("fails for an unknown project", func() {
			_, err := svc.Converse(ctx, 999, nil, "hello")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("SaveTurn", func() {
		It("persists a turn with a generated snowflake ID", func() {
			turn, err := svc.SaveTurn(ctx, projectID, model.TurnRoleUser, "I need an online store")

			Expect(err).NotTo(HaveOccurred())
			Expect(turn.ID).NotTo(BeZero())
			Expect(turn.ProjectID).To(Equal(projectID))
			Expect(turns.turns).To(HaveLen(1))
		})

		It("accepts the bot role", func() {
			_, err := svc.SaveTurn(ctx, projectID, model.TurnRoleBot, "What will you sell?")
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects roles outside the interview", func() {
			_, err := svc.SaveTurn(ctx, projectID, "system", "nope")
			Expect(err).To(HaveOccurred())
			Expect(turns.turns).To(BeEmpty())
		})
	})

	Describe("Transcript", func() {
		It("returns the stored turns for the project only", func() {
			turns.turns = []model.Turn{
				{ID: 1, ProjectID: projectID, Role: model.TurnRoleUser, Content: "a"},
				{ID: 2, ProjectID: 999, Role: model.TurnRoleUser, Content: "b"},
			}

			got, err := svc.Transcript(ctx, projectID)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			Expect(got[0].Content).To(Equal("a"))
		})
	})
})
