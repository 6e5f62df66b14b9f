package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secrets/internal/config"
	"github.com/MKhiriev/go-secrets/internal/handler"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/metrics"
	"github.com/MKhiriev/go-secrets/internal/server"
	"github.com/MKhiriev/go-secrets/internal/service"
	"github.com/MKhiriev/go-secrets/internal/store"
	"github.com/MKhiriev/go-secrets/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-secrets-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("session_backend", cfg.Storage.Sessions.Backend).
		Dur("session_ttl", cfg.App.SessionTTL).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, storages, metrics.NewRegistry(), log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	workersDone := make(chan struct{})
	go func() {
		workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
		close(workersDone)
	}()

	err = srv.RunServer(ctx)
	stop()
	<-workersDone

	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
