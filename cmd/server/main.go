package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pulse-keeper/internal/config"
	"github.com/MKhiriev/go-pulse-keeper/internal/crypto"
	httphandler "github.com/MKhiriev/go-pulse-keeper/internal/handler/http"
	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/server"
	"github.com/MKhiriev/go-pulse-keeper/internal/service"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pulse-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("env", cfg.App.Env).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	hasher := crypto.NewPasswordHasher()
	services := service.NewServices(storages, hasher, cfg.App, log)
	handler := httphandler.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// blocks until a stop signal has drained the HTTP listener
	srv.RunServer()

	if err := db.Close(); err != nil {
		log.Err(err).Msg("error closing database connection")
	}
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
