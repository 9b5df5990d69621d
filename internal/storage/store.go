// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Mahe1235/Thai2026/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for the trip's ledger and reference records.
// The abstraction keeps the service layer independent of the backing
// database; the reference deployment uses SQLite.
//
// The store owns the authoritative records. Balances, transfers, and the
// pool summary are never persisted; callers recompute them from the lists
// returned here.
type Store interface {
	// CreateExpense persists a new shared expense. The ID and CreatedAt
	// fields are populated by the store when unset.
	CreateExpense(ctx context.Context, expense *models.SplitExpense) error

	// ListExpenses returns all shared expenses, newest first.
	ListExpenses(ctx context.Context) ([]*models.SplitExpense, error)

	// DeleteExpense removes an expense by ID. Returns ErrNotFound if it
	// does not exist.
	DeleteExpense(ctx context.Context, id string) error

	// CreateSettlement persists a new settlement. Settlements are
	// append-only; there is no update or delete.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements returns all settlements, newest first.
	ListSettlements(ctx context.Context) ([]*models.Settlement, error)

	// CreateCashTransaction persists a new cash pool transaction.
	CreateCashTransaction(ctx context.Context, txn *models.CashTransaction) error

	// ListCashTransactions returns all pool transactions, newest first.
	ListCashTransactions(ctx context.Context) ([]*models.CashTransaction, error)

	// DeleteCashTransaction removes a pool transaction by ID.
	DeleteCashTransaction(ctx context.Context, id string) error

	// CreatePlace persists a new place.
	CreatePlace(ctx context.Context, place *models.Place) error

	// ListPlaces returns places ordered by sort order then creation time.
	// An empty category returns everything.
	ListPlaces(ctx context.Context, category string) ([]*models.Place, error)

	// SetPlaceVisited flips the visited flag on a place.
	SetPlaceVisited(ctx context.Context, id string, visited bool) error

	// DeletePlace removes a place by ID.
	DeletePlace(ctx context.Context, id string) error

	// UpsertDocumentStatus writes one member's status for a section,
	// replacing any previous row for the same (section, member).
	UpsertDocumentStatus(ctx context.Context, status *models.DocumentStatus) error

	// ListDocumentStatuses returns all recorded statuses for a section.
	// Members with no row simply have no entry; callers zero-fill.
	ListDocumentStatuses(ctx context.Context, section string) ([]*models.DocumentStatus, error)

	// Close releases any resources held by the store.
	Close() error
}
