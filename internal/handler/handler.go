// Package handler exposes the REST API and the websocket subscription
// endpoint. Handlers decode and respond; all validation and business rules
// live in the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mahe1235/Thai2026/internal/ledger"
	"github.com/Mahe1235/Thai2026/internal/middleware"
	"github.com/Mahe1235/Thai2026/internal/service"
	"github.com/Mahe1235/Thai2026/internal/storage"
	"github.com/Mahe1235/Thai2026/internal/weather"
)

// Handler wires the services to HTTP routes.
type Handler struct {
	ledger    *service.LedgerService
	pool      *service.PoolService
	places    *service.PlaceService
	documents *service.DocumentService
	weather   *weather.Client
	hub       http.Handler
}

// New creates a Handler. hub may be nil when websocket sync is disabled.
func New(
	ledgerSvc *service.LedgerService,
	poolSvc *service.PoolService,
	placeSvc *service.PlaceService,
	documentSvc *service.DocumentService,
	weatherClient *weather.Client,
	hub http.Handler,
) *Handler {
	return &Handler{
		ledger:    ledgerSvc,
		pool:      poolSvc,
		places:    placeSvc,
		documents: documentSvc,
		weather:   weatherClient,
		hub:       hub,
	}
}

// Routes builds the full router with middleware applied.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.Metrics, middleware.CORS)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if h.hub != nil {
		r.Handle("/ws", h.hub).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/trip", h.tripOverview).Methods(http.MethodGet)
	api.HandleFunc("/trip/itinerary", h.itinerary).Methods(http.MethodGet)
	api.HandleFunc("/trip/flights", h.flights).Methods(http.MethodGet)
	api.HandleFunc("/weather", h.currentWeather).Methods(http.MethodGet)

	api.HandleFunc("/expenses", h.listExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expenses", h.createExpense).Methods(http.MethodPost)
	api.HandleFunc("/expenses/{id}", h.deleteExpense).Methods(http.MethodDelete)
	api.HandleFunc("/settlements", h.listSettlements).Methods(http.MethodGet)
	api.HandleFunc("/settlements", h.createSettlement).Methods(http.MethodPost)
	api.HandleFunc("/balances", h.balances).Methods(http.MethodGet)

	api.HandleFunc("/pool", h.listPool).Methods(http.MethodGet)
	api.HandleFunc("/pool", h.addPool).Methods(http.MethodPost)
	api.HandleFunc("/pool/summary", h.poolSummary).Methods(http.MethodGet)
	api.HandleFunc("/pool/{id}", h.deletePool).Methods(http.MethodDelete)

	api.HandleFunc("/places", h.listPlaces).Methods(http.MethodGet)
	api.HandleFunc("/places", h.createPlace).Methods(http.MethodPost)
	api.HandleFunc("/places/{id}/visited", h.setPlaceVisited).Methods(http.MethodPut)
	api.HandleFunc("/places/{id}", h.deletePlace).Methods(http.MethodDelete)

	api.HandleFunc("/documents/{section}", h.documentStatuses).Methods(http.MethodGet)
	api.HandleFunc("/documents/{section}/{member}/cycle", h.cycleDocument).Methods(http.MethodPost)
	api.HandleFunc("/documents/{section}/{member}/ref", h.setDocumentRef).Methods(http.MethodPut)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError maps service errors to HTTP statuses: validation failures
// are 400, missing records 404, everything else 500 with the detail logged
// rather than leaked.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidExpense), errors.Is(err, ledger.ErrUnknownMember):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		slog.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", ledger.ErrInvalidExpense, err)
	}
	return nil
}
