package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) documentStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.documents.Statuses(r.Context(), mux.Vars(r)["section"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, statuses)
}

func (h *Handler) cycleDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status, err := h.documents.Cycle(r.Context(), vars["section"], vars["member"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

func (h *Handler) setDocumentRef(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Ref string `json:"ref"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, err)
		return
	}
	vars := mux.Vars(r)
	status, err := h.documents.SetRef(r.Context(), vars["section"], vars["member"], body.Ref)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
