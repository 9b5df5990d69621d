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

// LedgerService owns the shared-expense ledger: expense and settlement
// CRUD plus the derived balance sheet.
type LedgerService struct {
	store    storage.Store
	members  []string
	memberOK map[string]bool
	notifier Notifier
}

// NewLedgerService creates a LedgerService for the given member universe.
// A nil notifier disables change events.
func NewLedgerService(store storage.Store, members []string, notifier Notifier) *LedgerService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	memberOK := make(map[string]bool, len(members))
	for _, m := range members {
		memberOK[m] = true
	}
	return &LedgerService{
		store:    store,
		members:  members,
		memberOK: memberOK,
		notifier: notifier,
	}
}

// MemberBalance pairs a member with their net balance for rendering.
// Positive means the group owes the member.
type MemberBalance struct {
	Member  string  `json:"member"`
	Balance float64 `json:"balance"`
}

// BalanceSheet is the full derived view: one balance per member in
// universe order, plus the simplified settle-up list.
type BalanceSheet struct {
	Balances  []MemberBalance   `json:"balances"`
	Transfers []ledger.Transfer `json:"transfers"`
}

func (s *LedgerService) validMember(name string) error {
	if !s.memberOK[name] {
		return fmt.Errorf("%w: %q", ledger.ErrUnknownMember, name)
	}
	return nil
}

// CreateExpense validates and persists a shared expense.
//
// An empty split set defaults to the full member universe, matching the
// submission behavior of the app: "split among everyone" is the common
// case and the core refuses empty splits outright.
func (s *LedgerService) CreateExpense(ctx context.Context, expense *models.SplitExpense) error {
	if expense.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ledger.ErrInvalidExpense)
	}
	if err := s.validMember(expense.PaidBy); err != nil {
		return err
	}
	if len(expense.SplitAmong) == 0 {
		expense.SplitAmong = append([]string(nil), s.members...)
	}
	for _, m := range expense.SplitAmong {
		if err := s.validMember(m); err != nil {
			return err
		}
	}
	if expense.Category == "" {
		expense.Category = "misc"
	}
	if !trip.ValidCategory(expense.Category) {
		return fmt.Errorf("%w: unknown category %q", ledger.ErrInvalidExpense, expense.Category)
	}
	if expense.Description == "" {
		expense.Description = expense.Category
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return err
	}

	slog.Info("expense recorded",
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"paid_by", expense.PaidBy,
		"split_count", len(expense.SplitAmong),
	)
	s.notifier.Publish(tableExpenses, "insert")
	return nil
}

// ListExpenses returns all shared expenses, newest first.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]*models.SplitExpense, error) {
	return s.store.ListExpenses(ctx)
}

// DeleteExpense removes an expense. Deletion is the only mutation an
// expense supports.
func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	slog.Info("expense deleted", "expense_id", id)
	s.notifier.Publish(tableExpenses, "delete")
	return nil
}

// CreateSettlement validates and persists a settlement. Settlements are
// append-only; duplicates from concurrent "mark settled" taps are
// accepted and net out in the balance computation.
func (s *LedgerService) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ledger.ErrInvalidExpense)
	}
	if err := s.validMember(settlement.FromMember); err != nil {
		return err
	}
	if err := s.validMember(settlement.ToMember); err != nil {
		return err
	}
	if settlement.FromMember == settlement.ToMember {
		return fmt.Errorf("%w: settlement parties must differ", ledger.ErrInvalidExpense)
	}

	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return err
	}

	slog.Info("settlement recorded",
		"settlement_id", settlement.ID,
		"from", settlement.FromMember,
		"to", settlement.ToMember,
		"amount", settlement.Amount,
	)
	s.notifier.Publish(tableSettlements, "insert")
	return nil
}

// ListSettlements returns all settlements, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context) ([]*models.Settlement, error) {
	return s.store.ListSettlements(ctx)
}

// Balances recomputes the balance sheet from scratch: every expense and
// settlement is fetched and fed through the pure transforms. Nothing is
// cached, so the sheet can never drift from the source records.
func (s *LedgerService) Balances(ctx context.Context) (*BalanceSheet, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	settlements, err := s.store.ListSettlements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	calcExpenses := make([]ledger.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		calcExpenses[i] = ledger.ExpenseForBalance{
			Amount:     e.Amount,
			PaidBy:     e.PaidBy,
			SplitAmong: e.SplitAmong,
		}
	}
	calcSettlements := make([]ledger.SettlementForBalance, len(settlements))
	for i, st := range settlements {
		calcSettlements[i] = ledger.SettlementForBalance{
			From:   st.FromMember,
			To:     st.ToMember,
			Amount: st.Amount,
		}
	}

	balances, err := ledger.ComputeBalances(calcExpenses, calcSettlements, s.members)
	if err != nil {
		return nil, err
	}
	transfers, err := ledger.SimplifyDebts(balances)
	if err != nil {
		// Partial transfer list with residue left over: log and serve
		// what we have rather than failing the whole read.
		slog.Warn("debt simplification left residual balances", "error", err)
	}

	sheet := &BalanceSheet{
		Balances:  make([]MemberBalance, len(s.members)),
		Transfers: transfers,
	}
	for i, m := range s.members {
		sheet.Balances[i] = MemberBalance{Member: m, Balance: balances[m]}
	}
	return sheet, nil
}
