package models

// SplitExpense represents an expense one member paid on behalf of a subset
// of the group. The cost is divided evenly among SplitAmong.
type SplitExpense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is the human-readable label (e.g. "Dinner at Marush").
	Description string `json:"description"`

	// Amount is the full amount the payer fronted. Always positive.
	Amount float64 `json:"amount"`

	// Category is one of the configured expense categories
	// (food, transport, accommodation, ...).
	Category string `json:"category"`

	// PaidBy is the member who fronted the money.
	PaidBy string `json:"paid_by"`

	// SplitAmong is the set of members sharing the cost. Order is
	// irrelevant and duplicates are meaningless; never empty once stored.
	SplitAmong []string `json:"split_among"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
