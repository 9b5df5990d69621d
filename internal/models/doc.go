// Package models defines the core domain records for the trip backend.
//
// # Record kinds
//
//   - SplitExpense: one member fronting money for a subset of the group
//   - Settlement: an out-of-band payment between two members
//   - CashTransaction: a debit or handout against the shared cash pool
//   - Place: a point of interest on the shared wishlist
//   - DocumentStatus: per-member progress on a travel document section
//
// Members are identified by display name strings; the group is a fixed,
// known set of travelers and there are no user accounts. The fixed
// universe lives in config, not here, so the records stay agnostic of the
// deployment.
//
// # Design principles
//
//  1. Store only source-of-truth records. Balances and suggested transfers
//     are projections recomputed on every read (see internal/ledger) and
//     are deliberately absent from this package.
//  2. Last write wins. Records carry no version column; concurrent edits
//     from two devices resolve by overwrite.
//  3. Expenses are immutable once created except for deletion. Settlements
//     are never edited or removed; a mistake is corrected by recording a
//     compensating entry.
package models
