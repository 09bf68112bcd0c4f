package service_test

import (
	"context"

	"reqwise.app/intake/internal/model"
	"reqwise.app/intake/internal/service"
	"reqwise.app/intake/internal/store"
)

// memTurnStore keeps transcript rows in memory, ordered by insertion.
type memTurnStore struct {
	turns     []model.Turn
	createErr error
	listErr   error
	deleteErr error
}

func (m *memTurnStore) Create(_ context.Context, turn *model.Turn) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.turns = append(m.turns, *turn)
	return nil
}

func (m *memTurnStore) ListByProject(_ context.Context, projectID int64) ([]model.Turn, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Turn
	for _, t := range m.turns {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTurnStore) DeleteByProject(_ context.Context, projectID int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	kept := m.turns[:0]
	for _, t := range m.turns {
		if t.ProjectID != projectID {
			kept = append(kept, t)
		}
	}
	m.turns = kept
	return nil
}

type memProjectStore struct {
	projects  map[int64]*model.Project
	updateErr error
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{projects: make(map[int64]*model.Project)}
}

func (m *memProjectStore) GetByID(_ context.Context, id int64) (*model.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProjectStore) UpdateSummary(_ context.Context, id int64, summary string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	p, ok := m.projects[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Summary = &summary
	return nil
}

// memStores satisfies service.StoreProvider over the in-memory stores.
type memStores struct {
	turns    *memTurnStore
	projects *memProjectStore
}

func (m *memStores) Turns() store.TurnStore       { return m.turns }
func (m *memStores) Projects() store.ProjectStore { return m.projects }

// fakeTxRunner mimics transactional semantics: on fn error the stores are
// restored to their pre-transaction state.
type fakeTxRunner struct {
	stores *memStores
}

func (r *fakeTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	turnsSnapshot := append([]model.Turn(nil), r.stores.turns.turns...)
	projectsSnapshot := make(map[int64]*model.Project, len(r.stores.projects.projects))
	for id, p := range r.stores.projects.projects {
		cp := *p
		projectsSnapshot[id] = &cp
	}

	if err := fn(r.stores); err != nil {
		r.stores.turns.turns = turnsSnapshot
		r.stores.projects.projects = projectsSnapshot
		return err
	}
	return nil
}

type fakeExtractor struct {
	extractFn func(ctx context.Context, transcript []model.ConversationMessage) (model.Summary, error)
	lastInput []model.ConversationMessage
}

func (f *fakeExtractor) Extract(ctx context.Context, transcript []model.ConversationMessage) (model.Summary, error) {
	f.lastInput = transcript
	if f.extractFn != nil {
		return f.extractFn(ctx, transcript)
	}
	return model.EmptySummary(), nil
}
