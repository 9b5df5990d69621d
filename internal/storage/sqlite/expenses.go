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

// CreateExpense persists a new shared expense and its split participants.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.SplitExpense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO split_expenses (id, description, amount, category, paid_by, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.Description, expense.Amount, expense.Category, expense.PaidBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, member := range expense.SplitAmong {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO split_participants (expense_id, member) VALUES (?, ?)",
			expense.ID, member,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpenses retrieves all shared expenses with their split sets,
// newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.SplitExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, amount, category, paid_by, created_at FROM split_expenses ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.SplitExpense
	byID := make(map[string]*models.SplitExpense)
	for rows.Next() {
		expense := &models.SplitExpense{}
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount,
			&expense.Category, &expense.PaidBy, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	memberRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, member FROM split_participants ORDER BY member",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list split participants: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var expenseID, member string
		if err := memberRows.Scan(&expenseID, &member); err != nil {
			return nil, fmt.Errorf("failed to scan split participant: %w", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.SplitAmong = append(expense.SplitAmong, member)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split participants: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID; participants cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM split_expenses WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check expense existence: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM split_expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
