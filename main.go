package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/symplab/cure-calendar-api/catalogparser"
	"github.com/symplab/cure-calendar-api/config"
	"github.com/symplab/cure-calendar-api/data"
	"github.com/symplab/cure-calendar-api/logging"
	"github.com/symplab/cure-calendar-api/scheduler"
	"github.com/symplab/cure-calendar-api/server"
	"github.com/symplab/cure-calendar-api/validation"
)

func main() {
	// .env is optional, environment variables may come from the service unit
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs")

	dataContainer := data.NewDataContainer()
	dataContainer.SetServerStartTime(time.Now())

	validator := validation.NewDataValidator()
	parser := catalogparser.NewParser(cfg.CatalogPath, validator)

	catalogScheduler := scheduler.NewCatalogScheduler(dataContainer, parser)
	if err := catalogScheduler.Start(); err != nil {
		logging.Error("Failed to start catalog scheduler", "error", err)
		os.Exit(1)
	}
	defer catalogScheduler.Stop()

	srv := server.NewServer(cfg, dataContainer, validator)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}
}
