package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"compass-utils/internal/actions"
	"compass-utils/internal/api/routes"
	"compass-utils/internal/config"
	"compass-utils/internal/extraction"
	"compass-utils/internal/llm"
	"compass-utils/internal/logging"
	"compass-utils/internal/session"
	"compass-utils/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Compass coaching server")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start completion manager", map[string]interface{}{"error": err.Error()})
	}

	// Initialize resume text acquisition
	ocrEngine, err := extraction.NewOCREngine(cfg)
	if err != nil {
		logger.Fatal("Failed to configure OCR engine", map[string]interface{}{"error": err.Error()})
	}
	extractor := extraction.NewService(cfg, ocrEngine)

	// Initialize stores and session lifecycle
	profiles := store.NewProfileStore(cfg)
	trackers := store.NewTrackerStore()
	sessions := session.NewManager(profiles, trackers)
	actionManager := actions.NewManager()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, llmManager, extractor, profiles, trackers, sessions, actionManager)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping completion manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping completion manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Closing profile store...")
		if err := profiles.Close(); err != nil {
			logger.Error("Error closing profile store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	// Write timeout is left unset; coach responses can legitimately take
	// the full completion budget and are bounded per-route instead.
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
