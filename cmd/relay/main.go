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
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
	"compass-utils/internal/relay"
)

// The relay is a deliberately tiny deployment unit: one endpoint that keeps
// the completion API key off the client. It shares configuration and logging
// with the main server but runs as its own process.
func main() {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting completion relay")

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	handler := relay.NewHandler(cfg)
	e.POST("/api/roadmap", handler.Relay)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down relay...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down relay", map[string]interface{}{"error": err.Error()})
		}
	}()

	address := fmt.Sprintf(":%d", cfg.Relay.Port)
	logger.Info("Relay starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Relay failed to start", map[string]interface{}{"error": err.Error()})
	}
}
