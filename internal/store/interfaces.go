package store

import (
	"context"
	"errors"

	"reqwise.app/intake/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// TurnStore defines the contract for transcript data access. The transcript
// is append-only: turns are never updated, only created and mass-deleted when
// a summary is committed.
type TurnStore interface {
	Create(ctx context.Context, turn *model.Turn) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Turn, error)
	DeleteByProject(ctx context.Context, projectID int64) error
}

// ProjectStore defines the contract for project data access. Projects are
// created by the upstream management service sharing this database;
// UpdateSummary is the sole writer of the summary column here.
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	UpdateSummary(ctx context.Context, id int64, summary string) error
}
