package handler

import (
	"net/http"
	"time"

	"github.com/Mahe1235/Thai2026/internal/trip"
)

// tripOverview serves the dashboard header: the countdown, which itinerary
// day it is, and the fixed reference data every device renders identically.
func (h *Handler) tripOverview(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	countdown, upcoming := trip.Until(now, trip.Departure)
	day, onTrip := trip.DayOf(now)

	respondJSON(w, http.StatusOK, map[string]any{
		"countdown":     countdown,
		"departed":      !upcoming,
		"on_trip":       onTrip,
		"current_day":   day,
		"members":       trip.Members,
		"member_colors": trip.MemberColors,
		"categories":    trip.ExpenseCategories,
	})
}

func (h *Handler) itinerary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, trip.Itinerary)
}

func (h *Handler) flights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, trip.Flights)
}

// currentWeather serves conditions for whichever city the group is in on
// the current date.
func (h *Handler) currentWeather(w http.ResponseWriter, r *http.Request) {
	loc := trip.WeatherLocationFor(time.Now())
	current, err := h.weather.CurrentFor(r.Context(), loc)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, current)
}
