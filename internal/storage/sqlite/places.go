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

// CreatePlace persists a new place.
func (s *SQLiteStore) CreatePlace(ctx context.Context, place *models.Place) error {
	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	if place.CreatedAt == 0 {
		place.CreatedAt = time.Now().Unix()
	}
	if place.SortOrder == 0 {
		place.SortOrder = 999
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO places (id, name, category, address, maps_url, notes, visited, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		place.ID, place.Name, place.Category,
		nullable(place.Address), nullable(place.MapsURL), nullable(place.Notes),
		place.Visited, place.SortOrder, place.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}

	return nil
}

// ListPlaces retrieves places ordered by sort order then creation time.
// An empty category returns everything.
func (s *SQLiteStore) ListPlaces(ctx context.Context, category string) ([]*models.Place, error) {
	query := `SELECT id, name, category, address, maps_url, notes, visited, sort_order, created_at
	          FROM places`
	args := []interface{}{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY sort_order, created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	var places []*models.Place
	for rows.Next() {
		place := &models.Place{}
		var address, mapsURL, notes sql.NullString

		if err := rows.Scan(&place.ID, &place.Name, &place.Category,
			&address, &mapsURL, &notes,
			&place.Visited, &place.SortOrder, &place.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}

		place.Address = address.String
		place.MapsURL = mapsURL.String
		place.Notes = notes.String

		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}

	return places, nil
}

// SetPlaceVisited flips the visited flag on a place.
func (s *SQLiteStore) SetPlaceVisited(ctx context.Context, id string, visited bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE places SET visited = ? WHERE id = ?", visited, id)
	if err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("place %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeletePlace removes a place by ID.
func (s *SQLiteStore) DeletePlace(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM places WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("place %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
