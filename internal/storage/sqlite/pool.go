package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mahe1235/Thai2026/internal/models"
	"github.com/Mahe1235/Thai2026/internal/storage"
)

// CreateCashTransaction persists a new cash pool transaction.
func (s *SQLiteStore) CreateCashTransaction(ctx context.Context, txn *models.CashTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cash_transactions (id, type, amount, to_member, category, note, day_tag, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.Type, txn.Amount,
		nullable(txn.ToMember), nullable(txn.Category), nullable(txn.Note), nullable(txn.DayTag),
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cash transaction: %w", err)
	}

	return nil
}

// ListCashTransactions retrieves all pool transactions, newest first.
func (s *SQLiteStore) ListCashTransactions(ctx context.Context) ([]*models.CashTransaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount, to_member, category, note, day_tag, created_at
		 FROM cash_transactions ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.CashTransaction
	for rows.Next() {
		txn := &models.CashTransaction{}
		var toMember, category, note, dayTag sql.NullString

		if err := rows.Scan(&txn.ID, &txn.Type, &txn.Amount,
			&toMember, &category, &note, &dayTag, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cash transaction: %w", err)
		}

		txn.ToMember = toMember.String
		txn.Category = category.String
		txn.Note = note.String
		txn.DayTag = dayTag.String

		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cash transactions: %w", err)
	}

	return txns, nil
}

// DeleteCashTransaction removes a pool transaction by ID.
func (s *SQLiteStore) DeleteCashTransaction(ctx context.Context, id string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM cash_transactions WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("cash transaction %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check cash transaction existence: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM cash_transactions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete cash transaction: %w", err)
	}

	return nil
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
