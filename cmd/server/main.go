package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mahe1235/Thai2026/internal/config"
	"github.com/Mahe1235/Thai2026/internal/handler"
	"github.com/Mahe1235/Thai2026/internal/notify"
	"github.com/Mahe1235/Thai2026/internal/service"
	"github.com/Mahe1235/Thai2026/internal/storage/sqlite"
	"github.com/Mahe1235/Thai2026/internal/weather"
	"github.com/Mahe1235/Thai2026/pkg/logging"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	hub := notify.NewHub()
	go hub.Run()

	h := handler.New(
		service.NewLedgerService(store, cfg.Members, hub),
		service.NewPoolService(store, cfg.PoolTotal, cfg.Members, hub),
		service.NewPlaceService(store, hub),
		service.NewDocumentService(store, cfg.Members, hub),
		weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherCacheTTL),
		hub,
	)

	// No global read/write timeouts: they would set deadlines on the
	// long-lived websocket connections at /ws.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "address", srv.Addr, "members", len(cfg.Members))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
