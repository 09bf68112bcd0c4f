package store

import (
	"reqwise.app/intake/core/db"
)

// Stores bundles the data-access interfaces over one connection surface
// (pool or transaction).
type Stores struct {
	conn db.DBTX
}

func NewStores(conn db.DBTX) *Stores {
	return &Stores{conn: conn}
}

func (s *Stores) Turns() TurnStore {
	return newTurnStore(s.conn)
}

func (s *Stores) Projects() ProjectStore {
	return newProjectStore(s.conn)
}
