package models

// Document tracker statuses. Cycling order: not started, in progress,
// completed, back to not started.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// NextStatus returns the status that follows s in the cycle. Unknown
// statuses reset to not started.
func NextStatus(s string) string {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// DocumentStatus tracks one member's progress on one document section
// (TDAC arrival card, visa on arrival, and so on). There is exactly one
// row per (section, member); writes upsert.
type DocumentStatus struct {
	// Section identifies the document section (tdac, voa, india, ...).
	Section string `json:"section"`

	// Member is the traveler the status belongs to.
	Member string `json:"member"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Ref is an optional confirmation or reference number.
	Ref string `json:"ref,omitempty"`

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64 `json:"updated_at"`
}
