package models

// Place represents a point of interest on the group's shared wishlist.
type Place struct {
	// ID is the unique identifier for the place (UUID format).
	ID string `json:"id"`

	// Name is the display name (e.g. "Café del Mar").
	Name string `json:"name"`

	// Category groups places for filtering (Beach, Temple, Food, ...).
	Category string `json:"category"`

	// Address is an optional human-readable address.
	Address string `json:"address,omitempty"`

	// MapsURL is an optional Google Maps link.
	MapsURL string `json:"maps_url,omitempty"`

	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty"`

	// Visited marks the place as done.
	Visited bool `json:"visited"`

	// SortOrder controls display order; new places sink to the bottom.
	SortOrder int `json:"sort_order"`

	// CreatedAt is the Unix timestamp when the place was added.
	CreatedAt int64 `json:"created_at"`
}
