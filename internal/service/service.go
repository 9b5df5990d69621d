// Package service implements the application logic between the HTTP
// handlers and the store: input validation, the balance/debt projections,
// and change-event publication after every successful write.
package service

// Notifier receives a change event after every successful write so
// subscribed clients know to re-fetch. Implemented by notify.Hub.
type Notifier interface {
	Publish(table, action string)
}

// noopNotifier lets tests construct services without a hub.
type noopNotifier struct{}

func (noopNotifier) Publish(string, string) {}

// Change event table names.
const (
	tableExpenses    = "split_expenses"
	tableSettlements = "settlements"
	tablePool        = "cash_transactions"
	tablePlaces      = "places"
	tableDocuments   = "document_statuses"
)
