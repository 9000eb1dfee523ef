package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aidlink/backend/internal/catalog"
	"github.com/aidlink/backend/internal/config"
	"github.com/aidlink/backend/internal/discovery"
	"github.com/aidlink/backend/internal/eligibility"
	"github.com/aidlink/backend/internal/geocode"
	httpapi "github.com/aidlink/backend/internal/http"
	"github.com/aidlink/backend/internal/places"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "aidlink-backend").Logger()

	nominatim := &geocode.NominatimGeocoder{BaseURL: cfg.NominatimBaseURL, UserAgent: "AidLink"}

	google := &places.GoogleProvider{
		APIKey:   cfg.GooglePlacesAPIKey,
		Geocoder: &geocode.GoogleGeocoder{APIKey: cfg.GooglePlacesAPIKey},
		Logger:   logger,
	}
	osm := &places.OSMProvider{
		BaseURL:  cfg.OverpassBaseURL,
		Geocoder: nominatim,
		Logger:   logger,
	}
	if !google.Available() {
		logger.Warn().Msg("GOOGLE_PLACES_API_KEY not set, searches start at OpenStreetMap")
	}

	orchestrator := &discovery.Orchestrator{
		Providers: []places.Provider{google, osm},
		Catalog:   catalog.Verified{},
		Logger:    logger,
	}

	gemini := &eligibility.GeminiAssistant{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}
	navigator := &eligibility.Navigator{Model: cfg.GeminiModel, Logger: logger}
	if gemini.Available() {
		navigator.Assistant = gemini
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, eligibility runs in rule-based fallback mode")
	}

	router := httpapi.Router(cfg, orchestrator, navigator, google.Available(), gemini.Available(), logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
