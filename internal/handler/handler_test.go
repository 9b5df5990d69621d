package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mahe1235/Thai2026/internal/models"
	"github.com/Mahe1235/Thai2026/internal/service"
	"github.com/Mahe1235/Thai2026/internal/storage/sqlite"
	"github.com/Mahe1235/Thai2026/internal/trip"
	"github.com/Mahe1235/Thai2026/internal/weather"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	meteo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"current":{"temperature_2m":31.6,"weather_code":2,"relative_humidity_2m":70,"wind_speed_10m":12.4}}`)
	}))
	t.Cleanup(meteo.Close)

	h := New(
		service.NewLedgerService(store, trip.Members, nil),
		service.NewPoolService(store, trip.TotalCash, trip.Members, nil),
		service.NewPlaceService(store, nil),
		service.NewDocumentService(store, trip.Members, nil),
		weather.NewClient(meteo.URL, time.Minute),
		nil,
	)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	if status := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil, &body); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestExpenseLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var created models.SplitExpense
	status := doJSON(t, http.MethodPost, srv.URL+"/api/expenses", models.SplitExpense{
		Description: "Zipline tickets",
		Amount:      17500,
		Category:    "activities",
		PaidBy:      "Harish",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.ID == "" {
		t.Error("expected server-assigned ID")
	}
	if len(created.SplitAmong) != len(trip.Members) {
		t.Errorf("expected split to default to everyone, got %v", created.SplitAmong)
	}

	var listed []models.SplitExpense
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/expenses", nil, &listed); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(listed) != 1 || listed[0].Description != "Zipline tickets" {
		t.Errorf("unexpected list %v", listed)
	}

	var sheet service.BalanceSheet
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/balances", nil, &sheet); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(sheet.Transfers) != 6 {
		t.Errorf("expected 6 transfers, got %d", len(sheet.Transfers))
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/expenses/"+created.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}
}

func TestExpenseValidationStatuses(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+"/api/expenses", models.SplitExpense{
		Amount: -5, Category: "food", PaidBy: "Harish",
	}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for negative amount, got %d", status)
	}

	status = doJSON(t, http.MethodPost, srv.URL+"/api/expenses", models.SplitExpense{
		Amount: 100, Category: "food", PaidBy: "Stranger",
	}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown payer, got %d", status)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/expenses/missing", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for missing expense, got %d", resp.StatusCode)
	}
}

func TestPoolEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status := doJSON(t, http.MethodPost, srv.URL+"/api/pool", models.CashTransaction{
		Type: models.PoolExpense, Amount: 4200, Category: "food",
	}, nil)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	var summary models.PoolSummary
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/pool/summary", nil, &summary); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if summary.Total != trip.TotalCash || summary.Spent != 4200 {
		t.Errorf("unexpected summary %+v", summary)
	}
}

func TestPlaceEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var place models.Place
	status := doJSON(t, http.MethodPost, srv.URL+"/api/places", models.Place{
		Name: "Octave Rooftop Bar", Category: "Nightlife",
	}, &place)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	status = doJSON(t, http.MethodPut, srv.URL+"/api/places/"+place.ID+"/visited",
		map[string]bool{"visited": true}, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var places []models.Place
	doJSON(t, http.MethodGet, srv.URL+"/api/places?category=Nightlife", nil, &places)
	if len(places) != 1 || !places[0].Visited {
		t.Errorf("unexpected places %v", places)
	}
}

func TestDocumentEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var cycled models.DocumentStatus
	status := doJSON(t, http.MethodPost, srv.URL+"/api/documents/tdac/Meghana/cycle", nil, &cycled)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if cycled.Status != models.StatusInProgress {
		t.Errorf("expected in_progress, got %s", cycled.Status)
	}

	var statuses []models.DocumentStatus
	doJSON(t, http.MethodGet, srv.URL+"/api/documents/tdac", nil, &statuses)
	if len(statuses) != len(trip.Members) {
		t.Fatalf("expected %d rows, got %d", len(trip.Members), len(statuses))
	}

	status = doJSON(t, http.MethodPost, srv.URL+"/api/documents/tdac/Stranger/cycle", nil, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown member, got %d", status)
	}
}

func TestTripEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var overview map[string]any
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/trip", nil, &overview); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if _, ok := overview["countdown"]; !ok {
		t.Error("expected countdown in overview")
	}

	var days []trip.Day
	doJSON(t, http.MethodGet, srv.URL+"/api/trip/itinerary", nil, &days)
	if len(days) != 5 {
		t.Errorf("expected 5 itinerary days, got %d", len(days))
	}

	var flights []trip.Flight
	doJSON(t, http.MethodGet, srv.URL+"/api/trip/flights", nil, &flights)
	if len(flights) != 4 {
		t.Errorf("expected 4 flight legs, got %d", len(flights))
	}

	var current weather.Current
	if status := doJSON(t, http.MethodGet, srv.URL+"/api/weather", nil, &current); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if current.Temp != 32 {
		t.Errorf("expected rounded temp 32, got %d", current.Temp)
	}
}
