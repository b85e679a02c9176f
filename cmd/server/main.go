package main

import (
	"context"
	"fmt"

	"github.com/agenturjaeger/immocrm/internal/adapter"
	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/filestore"
	handlerHTTP "github.com/agenturjaeger/immocrm/internal/handler/http"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/server"
	"github.com/agenturjaeger/immocrm/internal/service"
	"github.com/agenturjaeger/immocrm/internal/store"
	"github.com/agenturjaeger/immocrm/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("immocrm-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	gateway, err := filestore.NewGateway(cfg.Storage.NAS, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating NAS gateway")
	}

	crm := adapter.NewHTTPCRMNotifier(cfg.Adapter, log)

	services := service.NewServices(storages, gateway, crm, log)
	handler := handlerHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
