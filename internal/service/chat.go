package service

import (
	"context"
	"fmt"
	"log/slog"

	"reqwise.app/intake/common/id"
	"reqwise.app/intake/common/logger"
	"reqwise.app/intake/internal/interview"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/store"
)

// ChatService coordinates the interview conversation: producing bot turns via
// the driver and persisting both sides of the exchange.
type ChatService struct {
	turns    store.TurnStore
	projects store.ProjectStore
	driver   *interview.Driver
}

func NewChatService(turns store.TurnStore, projects store.ProjectStore, driver *interview.Driver) *ChatService {
	return &ChatService{
		turns:    turns,
		projects: projects,
		driver:   driver,
	}
}

// Converse produces the next bot turn. The client may supply the history it
// already holds; when it does not, the stored transcript is used. The reply is
// not persisted here: the client echoes it back as a bot turn via SaveTurn.
func (s *ChatService) Converse(ctx context.Context, projectID int64, history []model.ConversationMessage, latestUserText string) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ProjectID: logger.Ptr(projectID),
		Component: "intake.service.chat",
	})

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading project %d: %w", projectID, err)
	}

	if len(history) == 0 {
		turns, err := s.turns.ListByProject(ctx, projectID)
		if err != nil {
			return "", fmt.Errorf("loading transcript: %w", err)
		}
		history = model.MessagesFromTurns(turns)
	}

	return s.driver.NextTurn(ctx, history, project.Name, latestUserText)
}

// SaveTurn persists one transcript turn. Only the two interview roles are
// accepted; anything else is rejected before touching storage.
func (s *ChatService) SaveTurn(ctx context.Context, projectID int64, role, content string) (*model.Turn, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ProjectID: logger.Ptr(projectID),
		Component: "intake.service.chat",
	})

	if role != model.TurnRoleUser && role != model.TurnRoleBot {
		return nil, fmt.Errorf("invalid role %q: must be %q or %q", role, model.TurnRoleUser, model.TurnRoleBot)
	}

	turn := &model.Turn{
		ID:        id.New(),
		ProjectID: projectID,
		Role:      role,
		Content:   content,
	}
	if err := s.turns.Create(ctx, turn); err != nil {
		return nil, fmt.Errorf("saving turn: %w", err)
	}

	slog.DebugContext(ctx, "turn saved", "turn_id", turn.ID, "role", role)
	return turn, nil
}

// Transcript returns the stored turns for a project in conversation order.
func (s *ChatService) Transcript(ctx context.Context, projectID int64) ([]model.Turn, error) {
	return s.turns.ListByProject(ctx, projectID)
}
