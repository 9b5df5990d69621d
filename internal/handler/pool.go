package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Mahe1235/Thai2026/internal/models"
)

func (h *Handler) listPool(w http.ResponseWriter, r *http.Request) {
	txns, err := h.pool.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, txns)
}

func (h *Handler) addPool(w http.ResponseWriter, r *http.Request) {
	var txn models.CashTransaction
	if err := decodeJSON(r, &txn); err != nil {
		respondError(w, err)
		return
	}
	if err := h.pool.Add(r.Context(), &txn); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, txn)
}

func (h *Handler) deletePool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.pool.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) poolSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.pool.Summary(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
