package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS split_expenses (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    category TEXT NOT NULL,
    paid_by TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS split_participants (
    expense_id TEXT NOT NULL,
    member TEXT NOT NULL,
    PRIMARY KEY (expense_id, member),
    FOREIGN KEY (expense_id) REFERENCES split_expenses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS settlements (
    id TEXT PRIMARY KEY,
    from_member TEXT NOT NULL,
    to_member TEXT NOT NULL,
    amount REAL NOT NULL,
    note TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS cash_transactions (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    amount REAL NOT NULL,
    to_member TEXT,
    category TEXT,
    note TEXT,
    day_tag TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS places (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    address TEXT,
    maps_url TEXT,
    notes TEXT,
    visited INTEGER NOT NULL DEFAULT 0,
    sort_order INTEGER NOT NULL DEFAULT 999,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS document_statuses (
    section TEXT NOT NULL,
    member TEXT NOT NULL,
    status TEXT NOT NULL,
    ref TEXT,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (section, member)
);

CREATE INDEX IF NOT EXISTS idx_split_participants_expense_id ON split_participants(expense_id);
CREATE INDEX IF NOT EXISTS idx_split_expenses_created_at ON split_expenses(created_at);
CREATE INDEX IF NOT EXISTS idx_settlements_created_at ON settlements(created_at);
CREATE INDEX IF NOT EXISTS idx_cash_transactions_created_at ON cash_transactions(created_at);
CREATE INDEX IF NOT EXISTS idx_places_category ON places(category);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
