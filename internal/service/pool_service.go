package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mahe1235/Thai2026/internal/ledger"
	"github.com/Mahe1235/Thai2026/internal/models"
	"github.com/Mahe1235/Thai2026/internal/storage"
	"github.com/Mahe1235/Thai2026/internal/trip"
)

// PoolService manages the shared cash pool: a configured total that pool
// expenses and cash handouts both draw down.
type PoolService struct {
	store    storage.Store
	total    float64
	memberOK map[string]bool
	notifier Notifier
}

// NewPoolService creates a PoolService with the configured pool total.
func NewPoolService(store storage.Store, total float64, members []string, notifier Notifier) *PoolService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	memberOK := make(map[string]bool, len(members))
	for _, m := range members {
		memberOK[m] = true
	}
	return &PoolService{
		store:    store,
		total:    total,
		memberOK: memberOK,
		notifier: notifier,
	}
}

// Add validates and records a pool transaction. Expenses carry a category,
// handouts carry a recipient; the other field must stay empty.
func (s *PoolService) Add(ctx context.Context, txn *models.CashTransaction) error {
	if txn.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ledger.ErrInvalidExpense)
	}

	switch txn.Type {
	case models.PoolExpense:
		if txn.ToMember != "" {
			return fmt.Errorf("%w: pool expense cannot name a recipient", ledger.ErrInvalidExpense)
		}
		if txn.Category == "" {
			txn.Category = "misc"
		}
		if !trip.ValidCategory(txn.Category) {
			return fmt.Errorf("%w: unknown category %q", ledger.ErrInvalidExpense, txn.Category)
		}
	case models.PoolCash:
		if txn.ToMember == "" {
			return fmt.Errorf("%w: cash handout needs a recipient", ledger.ErrInvalidExpense)
		}
		if !s.memberOK[txn.ToMember] {
			return fmt.Errorf("%w: %q", ledger.ErrUnknownMember, txn.ToMember)
		}
		txn.Category = ""
	default:
		return fmt.Errorf("%w: unknown transaction type %q", ledger.ErrInvalidExpense, txn.Type)
	}

	if err := s.store.CreateCashTransaction(ctx, txn); err != nil {
		return err
	}

	slog.Info("pool transaction recorded",
		"transaction_id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount,
	)
	s.notifier.Publish(tablePool, "insert")
	return nil
}

// List returns all pool transactions, newest first.
func (s *PoolService) List(ctx context.Context) ([]*models.CashTransaction, error) {
	return s.store.ListCashTransactions(ctx)
}

// Delete removes a pool transaction.
func (s *PoolService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteCashTransaction(ctx, id); err != nil {
		return err
	}
	slog.Info("pool transaction deleted", "transaction_id", id)
	s.notifier.Publish(tablePool, "delete")
	return nil
}

// Summary derives the pool state from the transaction list. Remaining can
// go negative if the group overspends the configured total; that is real
// information, not an error.
func (s *PoolService) Summary(ctx context.Context) (*models.PoolSummary, error) {
	txns, err := s.store.ListCashTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pool transactions: %w", err)
	}

	summary := &models.PoolSummary{Total: s.total}
	for _, txn := range txns {
		switch txn.Type {
		case models.PoolExpense:
			summary.Spent += txn.Amount
		case models.PoolCash:
			summary.Distributed += txn.Amount
		}
	}
	summary.Remaining = summary.Total - summary.Spent - summary.Distributed
	return summary, nil
}
