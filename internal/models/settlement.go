package models

// Settlement represents a payment between two members to clear debt.
// Settlements are append-only: recording one is the only way to offset a
// computed balance, and recording a compensating entry is the only way to
// undo one.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// FromMember is the debtor who paid.
	FromMember string `json:"from_member"`

	// ToMember is the creditor who received the payment.
	ToMember string `json:"to_member"`

	// Amount is the payment amount. Always positive.
	Amount float64 `json:"amount"`

	// Note is an optional free-form description.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `json:"created_at"`
}
