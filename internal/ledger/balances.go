// Package ledger implements the settlement engine: a pure balance
// computation over shared expenses and settlements, and a greedy debt
// simplifier that reduces the group's mutual debts to a short list of
// pairwise transfers.
//
// Both functions are stateless transforms over an in-memory snapshot.
// They perform no I/O, mutate nothing they are given, and are safe to
// call concurrently; callers re-invoke them on every data refresh.
package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExpense indicates an expense that cannot be split:
	// non-positive amount or an empty split set (division by zero).
	ErrInvalidExpense = errors.New("invalid expense")

	// ErrUnknownMember indicates a payer, split participant, or
	// settlement party outside the member universe. Dropping or
	// zero-filling such a record would silently break conservation,
	// so the whole computation is refused instead.
	ErrUnknownMember = errors.New("unknown member")
)

// ExpenseForBalance carries the minimal expense fields needed for balance
// computation.
type ExpenseForBalance struct {
	Amount     float64
	PaidBy     string
	SplitAmong []string
}

// SettlementForBalance carries the minimal settlement fields needed for
// balance computation.
type SettlementForBalance struct {
	From   string // debtor who paid
	To     string // creditor who was paid
	Amount float64
}

// ComputeBalances turns expenses and settlements into a net balance per
// member of the fixed universe. Positive means the group owes the member;
// negative means the member owes the group. Members with no activity map
// to zero.
//
// Algorithm:
//   - every member starts at 0
//   - per expense: payer is credited the full amount, each split member
//     is debited amount/len(split); no currency rounding at this stage
//   - per settlement: the payer is credited and the receiver debited,
//     which is how a settlement cancels an earlier debt
//
// Balances sum to zero across the universe (no money is created or
// destroyed by the transform). Expense order is irrelevant.
func ComputeBalances(expenses []ExpenseForBalance, settlements []SettlementForBalance, members []string) (map[string]float64, error) {
	balances := make(map[string]float64, len(members))
	for _, m := range members {
		balances[m] = 0
	}

	for _, e := range expenses {
		if e.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount %.2f must be positive", ErrInvalidExpense, e.Amount)
		}
		if len(e.SplitAmong) == 0 {
			return nil, fmt.Errorf("%w: empty split set", ErrInvalidExpense)
		}
		if _, ok := balances[e.PaidBy]; !ok {
			return nil, fmt.Errorf("%w: payer %q", ErrUnknownMember, e.PaidBy)
		}

		share := e.Amount / float64(len(e.SplitAmong))
		balances[e.PaidBy] += e.Amount
		for _, m := range e.SplitAmong {
			if _, ok := balances[m]; !ok {
				return nil, fmt.Errorf("%w: split participant %q", ErrUnknownMember, m)
			}
			balances[m] -= share
		}
	}

	for _, s := range settlements {
		if s.Amount <= 0 {
			return nil, fmt.Errorf("%w: settlement amount %.2f must be positive", ErrInvalidExpense, s.Amount)
		}
		if _, ok := balances[s.From]; !ok {
			return nil, fmt.Errorf("%w: settlement payer %q", ErrUnknownMember, s.From)
		}
		if _, ok := balances[s.To]; !ok {
			return nil, fmt.Errorf("%w: settlement receiver %q", ErrUnknownMember, s.To)
		}
		balances[s.From] += s.Amount
		balances[s.To] -= s.Amount
	}

	return balances, nil
}
