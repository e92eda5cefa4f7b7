package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	role = "go-note-server"

	// defaultVersion is the version reported when neither APP_VERSION nor
	// the linker provided one.
	defaultVersion = "dev"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	if err := run(os.Args[1:]); err != nil {
		logger.NewLogger(role, "").Fatal().Err(err).Msg("server stopped")
	}
}

// run wires the server and blocks until it shuts down. Errors are returned
// rather than fatal so deferred cleanup always runs.
func run(args []string) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)

	if cfg.App.Version == defaultVersion && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.App.IsProduction(), log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	notifier, err := adapter.NewNotifier(cfg.Notifier, log)
	if err != nil {
		log.Warn().Err(err).Msg("mail transport unavailable, messages will only be logged")
		notifier = adapter.NewNotifierWithTransport(adapter.NewLogTransport(log), cfg.Notifier.From, log)
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			log.Err(err).Msg("error closing notifier")
		}
	}()

	credentials := crypto.NewCredentialService(cfg.App, log)

	services, err := service.NewServices(storages, credentials, notifier, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	log.Info().
		Str("backend", storages.Backend()).
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Msg("starting server")

	srv.RunServer()
	return nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
