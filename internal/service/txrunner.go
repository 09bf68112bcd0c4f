package service

import (
	"context"

	"reqwise.app/intake/core/db"
	"reqwise.app/intake/internal/store"
)

// StoreProvider hands out stores bound to one connection surface. Inside a
// transaction every store returned by the same provider shares that
// transaction.
type StoreProvider interface {
	Turns() store.TurnStore
	Projects() store.ProjectStore
}

// TxRunner executes a function with stores bound to a single transaction.
// An error from fn rolls the whole transaction back.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

func NewTxRunner(database *db.DB) TxRunner {
	return &dbTxRunner{db: database}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(tx db.DBTX) error {
		return fn(store.NewStores(tx))
	})
}
