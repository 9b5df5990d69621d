package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Mahe1235/Thai2026/internal/ledger"
	"github.com/Mahe1235/Thai2026/internal/models"
	"github.com/Mahe1235/Thai2026/internal/storage"
)

// PlaceService manages the shared places-to-visit list.
type PlaceService struct {
	store    storage.Store
	notifier Notifier
}

// NewPlaceService creates a PlaceService.
func NewPlaceService(store storage.Store, notifier Notifier) *PlaceService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &PlaceService{store: store, notifier: notifier}
}

// Create validates and persists a place.
func (s *PlaceService) Create(ctx context.Context, place *models.Place) error {
	if place.Name == "" {
		return fmt.Errorf("%w: place name is required", ledger.ErrInvalidExpense)
	}
	if place.Category == "" {
		place.Category = "Other"
	}

	if err := s.store.CreatePlace(ctx, place); err != nil {
		return err
	}

	slog.Info("place added", "place_id", place.ID, "name", place.Name)
	s.notifier.Publish(tablePlaces, "insert")
	return nil
}

// List returns places ordered by sort order then creation time, optionally
// filtered to one category.
func (s *PlaceService) List(ctx context.Context, category string) ([]*models.Place, error) {
	return s.store.ListPlaces(ctx, category)
}

// SetVisited flips the visited flag on a place.
func (s *PlaceService) SetVisited(ctx context.Context, id string, visited bool) error {
	if err := s.store.SetPlaceVisited(ctx, id, visited); err != nil {
		return err
	}
	s.notifier.Publish(tablePlaces, "update")
	return nil
}

// Delete removes a place.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePlace(ctx, id); err != nil {
		return err
	}
	slog.Info("place deleted", "place_id", id)
	s.notifier.Publish(tablePlaces, "delete")
	return nil
}
