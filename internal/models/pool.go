package models

// Cash pool transaction types.
const (
	// PoolExpense is money spent from the shared pool.
	PoolExpense = "expense"
	// PoolCash is pool money handed out to a member.
	PoolCash = "cash"
)

// CashTransaction represents one movement against the shared cash pool.
// The pool starts at a configured total; expenses and handouts both reduce
// what remains.
type CashTransaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// Type is PoolExpense or PoolCash.
	Type string `json:"type"`

	// Amount is the transaction amount. Always positive.
	Amount float64 `json:"amount"`

	// ToMember is the member who received cash. Set only for PoolCash.
	ToMember string `json:"to_member,omitempty"`

	// Category is the expense category. Set only for PoolExpense.
	Category string `json:"category,omitempty"`

	// Note is an optional free-form description.
	Note string `json:"note,omitempty"`

	// DayTag optionally pins the transaction to an itinerary day.
	DayTag string `json:"day_tag,omitempty"`

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64 `json:"created_at"`
}

// PoolSummary is the derived state of the cash pool. Like balances, it is
// recomputed from the transaction list on every read and never stored.
type PoolSummary struct {
	Total       float64 `json:"total"`
	Spent       float64 `json:"spent"`
	Distributed float64 `json:"distributed"`
	Remaining   float64 `json:"remaining"`
}
