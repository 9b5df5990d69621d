package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Mahe1235/Thai2026/internal/models"
)

// UpsertDocumentStatus writes one member's status for a document section,
// replacing any previous row for the same (section, member).
func (s *SQLiteStore) UpsertDocumentStatus(ctx context.Context, status *models.DocumentStatus) error {
	if status.UpdatedAt == 0 {
		status.UpdatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO document_statuses (section, member, status, ref, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (section, member) DO UPDATE SET
		   status = excluded.status,
		   ref = excluded.ref,
		   updated_at = excluded.updated_at`,
		status.Section, status.Member, status.Status, nullable(status.Ref), status.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document status: %w", err)
	}

	return nil
}

// ListDocumentStatuses retrieves all recorded statuses for a section.
func (s *SQLiteStore) ListDocumentStatuses(ctx context.Context, section string) ([]*models.DocumentStatus, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT section, member, status, ref, updated_at
		 FROM document_statuses WHERE section = ? ORDER BY member`,
		section,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list document statuses: %w", err)
	}
	defer rows.Close()

	var statuses []*models.DocumentStatus
	for rows.Next() {
		status := &models.DocumentStatus{}
		var ref sql.NullString

		if err := rows.Scan(&status.Section, &status.Member, &status.Status, &ref, &status.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document status: %w", err)
		}

		status.Ref = ref.String
		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document statuses: %w", err)
	}

	return statuses, nil
}
