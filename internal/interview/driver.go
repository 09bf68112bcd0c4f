package interview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"reqwise.app/intake/common/llm"
	"reqwise.app/intake/common/logger"
	"reqwise.app/intake/internal/model"
)

// Driver produces the next bot turn of a requirements interview. It is
// stateless: persistence of both sides of the exchange is the caller's
// responsibility.
type Driver struct {
	gateway llm.Completer
}

func NewDriver(gateway llm.Completer) *Driver {
	return &Driver{gateway: gateway}
}

// NextTurn asks the gateway for the bot's reply given the full transcript and
// the latest user input. A successful call with empty model text yields a
// fixed fallback question; a total provider failure propagates unchanged.
func (d *Driver) NextTurn(ctx context.Context, transcript []model.ConversationMessage, projectName, latestUserText string) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "intake.interview.driver",
	})

	messages := toLLMMessages(transcript)
	if latestUserText != "" {
		messages = append(messages, llm.Message{
			Role:    "user",
			Content: latestUserText,
		})
	}

	text, err := d.gateway.Complete(ctx, llm.Request{
		System:      conversationSystemPrompt(projectName),
		Messages:    messages,
		Mode:        llm.ModeText,
		Temperature: llm.Temp(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("conversation turn: %w", err)
	}

	reply := strings.TrimSpace(text)
	if reply == "" {
		slog.DebugContext(ctx, "model returned empty text, using fallback question")
		return fallbackQuestion, nil
	}

	slog.DebugContext(ctx, "bot turn produced",
		"history_len", len(transcript),
		"reply", logger.Truncate(reply, 200))

	return reply, nil
}

// toLLMMessages maps provider-agnostic conversation messages to gateway
// messages. Bot-side roles ("model", "bot", "assistant") map to assistant;
// everything else is user input.
func toLLMMessages(transcript []model.ConversationMessage) []llm.Message {
	messages := make([]llm.Message, 0, len(transcript)+1)
	for _, msg := range transcript {
		role := "user"
		switch msg.Role {
		case model.MessageRoleModel, model.TurnRoleBot, "assistant":
			role = "assistant"
		}
		messages = append(messages, llm.Message{
			Role:    role,
			Content: msg.Text(),
		})
	}
	return messages
}
