package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"reqwise.app/intake/common/logger"
	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/store"
)

// ErrNoHistory is returned when summary generation is requested for a project
// with no stored conversation and no supplied history.
var ErrNoHistory = errors.New("no conversation history found for this project")

// ErrEmptyExtraction is returned when the model produced no usable content.
// The transcript is left untouched so generation can be retried.
var ErrEmptyExtraction = errors.New("extraction produced an empty summary")

// SummaryExtractor reduces a transcript to the canonical summary.
type SummaryExtractor interface {
	Extract(ctx context.Context, transcript []model.ConversationMessage) (model.Summary, error)
}

// SummaryService runs extraction over a project's transcript and commits the
// result. Commit semantics: the summary is written and the transcript deleted
// in one transaction, and only when extraction produced content.
type SummaryService struct {
	extractor SummaryExtractor
	turns     store.TurnStore
	tx        TxRunner
}

func NewSummaryService(extractor SummaryExtractor, turns store.TurnStore, tx TxRunner) *SummaryService {
	return &SummaryService{
		extractor: extractor,
		turns:     turns,
		tx:        tx,
	}
}

// Generate extracts a summary for the project and commits it. The caller may
// supply the conversation history it already holds; otherwise the stored
// transcript is used. On any failure before commit the transcript is intact,
// so the operation is safe to retry. Re-running after a successful commit
// finds an empty transcript and returns ErrNoHistory.
func (s *SummaryService) Generate(ctx context.Context, projectID int64, history []model.ConversationMessage) (model.Summary, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ProjectID: logger.Ptr(projectID),
		Component: "intake.service.summary",
	})

	if len(history) == 0 {
		turns, err := s.turns.ListByProject(ctx, projectID)
		if err != nil {
			return model.EmptySummary(), fmt.Errorf("loading transcript: %w", err)
		}
		if len(turns) == 0 {
			return model.EmptySummary(), ErrNoHistory
		}
		history = model.MessagesFromTurns(turns)
	}

	summary, err := s.extractor.Extract(ctx, history)
	if err != nil {
		return model.EmptySummary(), err
	}
	if summary.IsEmpty() {
		slog.WarnContext(ctx, "extraction produced empty summary, keeping transcript")
		return model.EmptySummary(), ErrEmptyExtraction
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return model.EmptySummary(), fmt.Errorf("serializing summary: %w", err)
	}

	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Projects().UpdateSummary(ctx, projectID, string(payload)); err != nil {
			return fmt.Errorf("updating project summary: %w", err)
		}
		if err := stores.Turns().DeleteByProject(ctx, projectID); err != nil {
			return fmt.Errorf("clearing transcript: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.EmptySummary(), err
	}

	slog.InfoContext(ctx, "summary committed",
		"functional", len(summary.Functional),
		"stakeholders", len(summary.Stakeholders))

	return summary, nil
}
