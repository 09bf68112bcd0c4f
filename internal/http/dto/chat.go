package dto

import (
	"time"

	"reqwise.app/intake/internal/model"
)

// MessagePart is one text fragment of a history message. The wire shape keeps
// parts as a list so clients can stream fragments, though in practice each
// message carries one part.
type MessagePart struct {
	Text string `json:"text"`
}

type HistoryMessage struct {
	Role  string        `json:"role" binding:"required"`
	Parts []MessagePart `json:"parts"`
}

func ToConversation(history []HistoryMessage) []model.ConversationMessage {
	messages := make([]model.ConversationMessage, 0, len(history))
	for _, msg := range history {
		parts := make([]string, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			parts = append(parts, p.Text)
		}
		messages = append(messages, model.ConversationMessage{
			Role:  msg.Role,
			Parts: parts,
		})
	}
	return messages
}

// ChatRequest covers both chat operations: role "conversation" asks for the
// next bot turn, roles "user" and "bot" persist a transcript turn.
type ChatRequest struct {
	ProjectID int64            `json:"projectId,string" binding:"required"`
	Role      string           `json:"role" binding:"required"`
	Message   string           `json:"message"`
	History   []HistoryMessage `json:"history"`
}

type ConverseResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

type TurnResponse struct {
	ID        int64     `json:"id,string"`
	ProjectID int64     `json:"projectId,string"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToTurnResponse(t *model.Turn) *TurnResponse {
	return &TurnResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Role:      t.Role,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

type SaveTurnResponse struct {
	Success bool          `json:"success"`
	Data    *TurnResponse `json:"data"`
}

type TranscriptResponse struct {
	Success bool           `json:"success"`
	Data    []TurnResponse `json:"data"`
}

func ToTranscriptResponse(turns []model.Turn) TranscriptResponse {
	data := make([]TurnResponse, 0, len(turns))
	for i := range turns {
		data = append(data, *ToTurnResponse(&turns[i]))
	}
	return TranscriptResponse{Success: true, Data: data}
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
