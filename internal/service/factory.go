package service

import (
	"reqwise.app/intake/core/db"
	"reqwise.app/intake/internal/interview"
	"reqwise.app/intake/internal/store"
)

// Services bundles the application services behind one constructor so the
// server entrypoint wires a single value.
type Services struct {
	Chat    *ChatService
	Summary *SummaryService
	Report  *ReportService
}

func NewServices(database *db.DB, driver *interview.Driver, extractor SummaryExtractor) *Services {
	stores := store.NewStores(database.Conn())
	turns := stores.Turns()
	projects := stores.Projects()

	return &Services{
		Chat:    NewChatService(turns, projects, driver),
		Summary: NewSummaryService(extractor, turns, NewTxRunner(database)),
		Report:  NewReportService(projects),
	}
}
