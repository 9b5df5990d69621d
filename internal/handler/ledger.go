package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Mahe1235/Thai2026/internal/models"
)

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.ledger.ListExpenses(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.SplitExpense
	if err := decodeJSON(r, &expense); err != nil {
		respondError(w, err)
		return
	}
	if err := h.ledger.CreateExpense(r.Context(), &expense); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, expense)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.ledger.DeleteExpense(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := h.ledger.ListSettlements(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settlements)
}

func (h *Handler) createSettlement(w http.ResponseWriter, r *http.Request) {
	var settlement models.Settlement
	if err := decodeJSON(r, &settlement); err != nil {
		respondError(w, err)
		return
	}
	if err := h.ledger.CreateSettlement(r.Context(), &settlement); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, settlement)
}

func (h *Handler) balances(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.ledger.Balances(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sheet)
}
