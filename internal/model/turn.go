package model

import (
	"strings"
	"time"
)

// Turn role constants. These are the storage roles; the wire-level
// conversation roles are on ConversationMessage.
const (
	TurnRoleUser = "user"
	TurnRoleBot  = "bot"
)

// Turn is one stored message in a project's interview transcript.
// Turns are immutable once created and deleted en masse when the project's
// summary is generated.
type Turn struct {
	ID        int64
	ProjectID int64
	Role      string // "user" or "bot"
	Content   string
	CreatedAt time.Time
}

// Conversation role constants for provider-agnostic messages.
const (
	MessageRoleUser  = "user"
	MessageRoleModel = "model"
)

// ConversationMessage is the provider-agnostic shape exchanged with clients
// and passed toward the LLM gateway: a role plus ordered text parts.
type ConversationMessage struct {
	Role  string   // "user" or "model"
	Parts []string // ordered text fragments
}

// Text concatenates the message parts with newlines.
func (m ConversationMessage) Text() string {
	return strings.Join(m.Parts, "\n")
}

// MessagesFromTurns maps stored transcript rows to conversation messages.
// Bot turns become "model" messages; everything else stays "user".
func MessagesFromTurns(turns []Turn) []ConversationMessage {
	messages := make([]ConversationMessage, len(turns))
	for i, turn := range turns {
		role := MessageRoleUser
		if turn.Role == TurnRoleBot {
			role = MessageRoleModel
		}
		messages[i] = ConversationMessage{
			Role:  role,
			Parts: []string{turn.Content},
		}
	}
	return messages
}
