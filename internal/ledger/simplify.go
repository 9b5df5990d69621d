package ledger

import (
	"errors"
	"math"
	"sort"
)

// Epsilon is the tolerance below which a balance is treated as settled.
// Amounts are whole currency units, so half a unit of rounding noise must
// not generate a spurious transfer.
const Epsilon = 0.5

// maxPasses bounds the matching loop. The loop settles at least one side
// per pass, so member count is the real bound; the generous cap only
// guards against pathological floating-point residue.
const maxPasses = 100

// ErrUnsettledResidue indicates the simplifier hit its pass ceiling with
// balances still outside Epsilon. The partial transfer list built so far
// is returned alongside it.
var ErrUnsettledResidue = errors.New("residual balances remain after simplification")

// Transfer is one recommended payment. Executing it moves both members'
// balances toward zero by Amount.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type entry struct {
	member  string
	balance float64
}

// SimplifyDebts reduces a balance map to a short list of pairwise
// transfers that zero out every balance within Epsilon.
//
// Greedy largest-pair matching: each pass pairs the largest creditor with
// the largest-magnitude debtor and settles min(credit, -debit) between
// them. Not provably minimal in transfer count, but deterministic and
// near-minimal at group sizes in scope, and it produces a settle-up list
// short enough for humans. Ties break by member name.
//
// Emitted amounts are rounded to the nearest whole unit; the running
// balances keep the unrounded value so rounding error cannot accumulate
// across passes. A balanced group yields an empty list.
func SimplifyDebts(balances map[string]float64) ([]Transfer, error) {
	bal := make(map[string]float64, len(balances))
	for m, b := range balances {
		bal[m] = b
	}

	var transfers []Transfer
	for pass := 0; pass < maxPasses; pass++ {
		creditors, debtors := partition(bal)
		if len(creditors) == 0 || len(debtors) == 0 {
			return transfers, nil
		}

		c, d := creditors[0], debtors[0]
		pay := math.Min(c.balance, -d.balance)
		transfers = append(transfers, Transfer{
			From:   d.member,
			To:     c.member,
			Amount: math.Round(pay),
		})
		bal[c.member] -= pay
		bal[d.member] += pay
	}

	// Shouldn't occur given the cap; return what was built rather than
	// looping forever.
	creditors, debtors := partition(bal)
	if len(creditors) > 0 && len(debtors) > 0 {
		return transfers, ErrUnsettledResidue
	}
	return transfers, nil
}

// partition splits members into creditors (balance > Epsilon, sorted
// descending) and debtors (balance < -Epsilon, sorted ascending). Members
// within Epsilon of zero are dropped.
func partition(bal map[string]float64) (creditors, debtors []entry) {
	for m, b := range bal {
		switch {
		case b > Epsilon:
			creditors = append(creditors, entry{m, b})
		case b < -Epsilon:
			debtors = append(debtors, entry{m, b})
		}
	}
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].member < creditors[j].member
	})
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].member < debtors[j].member
	})
	return creditors, debtors
}
