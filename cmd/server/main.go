package main

import (
	"context"
	"fmt"

	"github.com/mkosarev/keepsake/internal/config"
	"github.com/mkosarev/keepsake/internal/crypto"
	httphandler "github.com/mkosarev/keepsake/internal/handler/http"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/server"
	"github.com/mkosarev/keepsake/internal/service"
	"github.com/mkosarev/keepsake/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keepsake-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	envelope, err := crypto.NewEnvelopeService(cfg.App.EncryptionSecret, cfg.App.PinPepper)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating encryption envelope")
	}

	services := service.NewServices(storages, envelope, *cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	services.Workers.Run()
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
