package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"kansha-ordering/internal/api"
	"kansha-ordering/internal/app"
	"kansha-ordering/internal/config"
	"kansha-ordering/internal/logger"
	"kansha-ordering/internal/ui"
)

func main() {
	var (
		backend = flag.String("backend", "", "Order Service base URL (overrides BACKEND_URL)")
		path    = flag.String("path", "/", "Start path; /admin opens the admin login view")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	if *backend != "" {
		cfg.BackendURL = *backend
	}

	log := logger.New(cfg.ServiceName)
	requestID := logger.GenerateRequestID()

	log.Info("client_started", "Starting ordering client", requestID, map[string]interface{}{
		"backend_url": cfg.BackendURL,
		"start_path":  *path,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("client_interrupted", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	ctrl := app.New(api.NewClient(cfg.BackendURL), cfg, log, ui.ConsoleAlerter{Out: os.Stdout}, ui.BrowserPaymentPage{})
	ctrl.RouteInitial(*path)

	if err := ui.New(ctrl, os.Stdin, os.Stdout).Run(ctx); err != nil && err != context.Canceled {
		log.Error("client_failed", "Ordering client exited with error", requestID, err, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info("client_stopped", "Ordering client stopped", requestID, nil)
}
