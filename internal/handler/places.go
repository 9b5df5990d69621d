package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Mahe1235/Thai2026/internal/models"
)

func (h *Handler) listPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.places.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, places)
}

func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	if err := decodeJSON(r, &place); err != nil {
		respondError(w, err)
		return
	}
	if err := h.places.Create(r.Context(), &place); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, place)
}

func (h *Handler) setPlaceVisited(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Visited bool `json:"visited"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.places.SetVisited(r.Context(), id, body.Visited); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"id": id, "visited": body.Visited})
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.places.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
