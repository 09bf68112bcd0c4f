package interview_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reqwise.app/intake/common/llm"
	"reqwise.app/intake/internal/interview"
	"reqwise.app/intake/internal/model"
)

var _ = Describe("Driver", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("returns the model's reply trimmed", func() {
		gw := replyWith("  What problem does your product solve?  \n")
		driver := interview.NewDriver(gw)

		reply, err := driver.NextTurn(ctx, nil, "Acme CRM", "I want to build a CRM")

		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(Equal("What problem does your product solve?"))
	})

	It("asks in text mode with the interview system prompt", func() {
		gw := replyWith("next question")
		driver := interview.NewDriver(gw)

		_, err := driver.NextTurn(ctx, nil, "Acme CRM", "hello")

		Expect(err).NotTo(HaveOccurred())
		Expect(gw.lastReq.Mode).To(Equal(llm.ModeText))
		Expect(gw.lastReq.System).To(ContainSubstring("Acme CRM"))
		Expect(gw.lastReq.System).To(ContainSubstring("ONLY ONE question at a time"))
	})

	It("appends the latest user text after the transcript", func() {
		gw := replyWith("ok")
		driver := interview.NewDriver(gw)

		transcript := []model.ConversationMessage{
			{Role: model.MessageRoleUser, Parts: []string{"I need an app"}},
			{Role: model.MessageRoleModel, Parts: []string{"Who are your users?"}},
		}
		_, err := driver.NextTurn(ctx, transcript, "Acme CRM", "Small retail shops")

		Expect(err).NotTo(HaveOccurred())
		Expect(gw.lastReq.Messages).To(HaveLen(3))
		Expect(gw.lastReq.Messages[0]).To(Equal(llm.Message{Role: "user", Content: "I need an app"}))
		Expect(gw.lastReq.Messages[1]).To(Equal(llm.Message{Role: "assistant", Content: "Who are your users?"}))
		Expect(gw.lastReq.Messages[2]).To(Equal(llm.Message{Role: "user", Content: "Small retail shops"}))
	})

	It("falls back to a fixed question when the model returns empty text", func() {
		gw := replyWith("   \n  ")
		driver := interview.NewDriver(gw)

		reply, err := driver.NextTurn(ctx, nil, "Acme CRM", "hello")

		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(Equal("Could you share more details about your project goals and target users?"))
	})

	It("propagates a total gateway failure with both backend reasons", func() {
		gw := failWith("Both providers failed. Primary: rate limited, Secondary: connection refused")
		driver := interview.NewDriver(gw)

		_, err := driver.NextTurn(ctx, nil, "Acme CRM", "hello")

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("rate limited"))
		Expect(err.Error()).To(ContainSubstring("connection refused"))
	})
})
