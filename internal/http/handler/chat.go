package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reqwise.app/intake/internal/http/dto"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/store"
)

// ChatService is the slice of the chat service this handler needs.
type ChatService interface {
	Converse(ctx context.Context, projectID int64, history []model.ConversationMessage, latestUserText string) (string, error)
	SaveTurn(ctx context.Context, projectID int64, role, content string) (*model.Turn, error)
	Transcript(ctx context.Context, projectID int64) ([]model.Turn, error)
}

type ChatHandler struct {
	chatService ChatService
}

func NewChatHandler(chatService ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Post handles both chat operations. Role "conversation" produces the next
// bot turn from the supplied history; roles "user" and "bot" persist one
// transcript turn.
func (h *ChatHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	switch req.Role {
	case "conversation":
		reply, err := h.chatService.Converse(ctx, req.ProjectID, dto.ToConversation(req.History), req.Message)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.NewErrorResponse("project not found"))
				return
			}
			slog.ErrorContext(ctx, "conversation turn failed", "error", err, "project_id", req.ProjectID)
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.ConverseResponse{Success: true, Response: reply})

	case model.TurnRoleUser, model.TurnRoleBot:
		if req.Message == "" {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("message is required"))
			return
		}
		turn, err := h.chatService.SaveTurn(ctx, req.ProjectID, req.Role, req.Message)
		if err != nil {
			slog.ErrorContext(ctx, "failed to save turn", "error", err, "project_id", req.ProjectID)
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to save message"))
			return
		}
		c.JSON(http.StatusCreated, dto.SaveTurnResponse{Success: true, Data: dto.ToTurnResponse(turn)})

	default:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("role must be conversation, user or bot"))
	}
}

// Get returns the stored transcript for a project in conversation order.
func (h *ChatHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := strconv.ParseInt(c.Query("projectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("projectId is required"))
		return
	}

	turns, err := h.chatService.Transcript(ctx, projectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load transcript", "error", err, "project_id", projectID)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to load messages"))
		return
	}

	c.JSON(http.StatusOK, dto.ToTranscriptResponse(turns))
}
