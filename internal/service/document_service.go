package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mahe1235/Thai2026/internal/ledger"
	"github.com/Mahe1235/Thai2026/internal/models"
	"github.com/Mahe1235/Thai2026/internal/storage"
)

// DocumentService tracks per-member progress on travel documents.
type DocumentService struct {
	store    storage.Store
	members  []string
	memberOK map[string]bool
	notifier Notifier
}

// NewDocumentService creates a DocumentService for the given members.
func NewDocumentService(store storage.Store, members []string, notifier Notifier) *DocumentService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	memberOK := make(map[string]bool, len(members))
	for _, m := range members {
		memberOK[m] = true
	}
	return &DocumentService{
		store:    store,
		members:  members,
		memberOK: memberOK,
		notifier: notifier,
	}
}

// Statuses returns one row per member for a section, in universe order.
// Members with no stored row get a zero-value "not started" entry, so the
// tracker always shows the full group.
func (s *DocumentService) Statuses(ctx context.Context, section string) ([]*models.DocumentStatus, error) {
	if section == "" {
		return nil, fmt.Errorf("%w: section is required", ledger.ErrInvalidExpense)
	}

	stored, err := s.store.ListDocumentStatuses(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to load document statuses: %w", err)
	}

	byMember := make(map[string]*models.DocumentStatus, len(stored))
	for _, st := range stored {
		byMember[st.Member] = st
	}

	out := make([]*models.DocumentStatus, len(s.members))
	for i, m := range s.members {
		if st, ok := byMember[m]; ok {
			out[i] = st
			continue
		}
		out[i] = &models.DocumentStatus{
			Section: section,
			Member:  m,
			Status:  models.StatusNotStarted,
		}
	}
	return out, nil
}

// Cycle advances a member's status to the next one in the cycle and
// returns the stored row. Last write wins when two devices tap at once.
func (s *DocumentService) Cycle(ctx context.Context, section, member string) (*models.DocumentStatus, error) {
	if section == "" {
		return nil, fmt.Errorf("%w: section is required", ledger.ErrInvalidExpense)
	}
	if !s.memberOK[member] {
		return nil, fmt.Errorf("%w: %q", ledger.ErrUnknownMember, member)
	}

	stored, err := s.store.ListDocumentStatuses(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to load document statuses: %w", err)
	}

	current := &models.DocumentStatus{
		Section: section,
		Member:  member,
		Status:  models.StatusNotStarted,
	}
	for _, st := range stored {
		if st.Member == member {
			current = st
			break
		}
	}

	current.Status = models.NextStatus(current.Status)
	current.UpdatedAt = time.Now().Unix()
	if err := s.store.UpsertDocumentStatus(ctx, current); err != nil {
		return nil, err
	}

	slog.Info("document status cycled",
		"section", section,
		"member", member,
		"status", current.Status,
	)
	s.notifier.Publish(tableDocuments, "update")
	return current, nil
}

// SetRef stores a reference number on a member's section row without
// touching the status.
func (s *DocumentService) SetRef(ctx context.Context, section, member, ref string) (*models.DocumentStatus, error) {
	if section == "" {
		return nil, fmt.Errorf("%w: section is required", ledger.ErrInvalidExpense)
	}
	if !s.memberOK[member] {
		return nil, fmt.Errorf("%w: %q", ledger.ErrUnknownMember, member)
	}

	stored, err := s.store.ListDocumentStatuses(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to load document statuses: %w", err)
	}

	current := &models.DocumentStatus{
		Section: section,
		Member:  member,
		Status:  models.StatusNotStarted,
	}
	for _, st := range stored {
		if st.Member == member {
			current = st
			break
		}
	}

	current.Ref = ref
	current.UpdatedAt = time.Now().Unix()
	if err := s.store.UpsertDocumentStatus(ctx, current); err != nil {
		return nil, err
	}

	s.notifier.Publish(tableDocuments, "update")
	return current, nil
}
