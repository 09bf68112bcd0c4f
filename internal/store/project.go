package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"reqwise.app/intake/core/db"
	"reqwise.app/intake/internal/model"
)

type projectStore struct {
	conn db.DBTX
}

func newProjectStore(conn db.DBTX) ProjectStore {
	return &projectStore{conn: conn}
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	row := s.conn.QueryRow(ctx,
		`SELECT id, name, description, summary, created_at
		 FROM projects
		 WHERE id = $1`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Summary, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *projectStore) UpdateSummary(ctx context.Context, id int64, summary string) error {
	tag, err := s.conn.Exec(ctx,
		`UPDATE projects SET summary = $2 WHERE id = $1`, id, summary)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
