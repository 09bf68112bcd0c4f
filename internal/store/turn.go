package store

import (
	"context"

	"reqwise.app/intake/core/db"
	"reqwise.app/intake/internal/model"
)

type turnStore struct {
	conn db.DBTX
}

func newTurnStore(conn db.DBTX) TurnStore {
	return &turnStore{conn: conn}
}

func (s *turnStore) Create(ctx context.Context, turn *model.Turn) error {
	row := s.conn.QueryRow(ctx,
		`INSERT INTO chat_messages (id, project_id, role, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		turn.ID, turn.ProjectID, turn.Role, turn.Content)
	return row.Scan(&turn.CreatedAt)
}

func (s *turnStore) ListByProject(ctx context.Context, projectID int64) ([]model.Turn, error) {
	rows, err := s.conn.Query(ctx,
		`SELECT id, project_id, role, content, created_at
		 FROM chat_messages
		 WHERE project_id = $1
		 ORDER BY created_at ASC, id ASC`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var t model.Turn
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Role, &t.Content, &t.CreatedAt); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

func (s *turnStore) DeleteByProject(ctx context.Context, projectID int64) error {
	_, err := s.conn.Exec(ctx,
		`DELETE FROM chat_messages WHERE project_id = $1`, projectID)
	return err
}
