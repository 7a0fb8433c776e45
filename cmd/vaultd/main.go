package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-life-vault/internal/app"
	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/handler"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/server"
	"github.com/MKhiriev/go-life-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("vaultd")
	cfg, _, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	vault, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling vault")
	}
	defer vault.Close()

	// a failed self-test keeps the bridge up with the crypto gate closed so
	// that /api/health/crypto can report it
	if err = vault.SelfTest(ctx); err != nil {
		log.Error().Err(err).Msg("startup self-test failed")
	}

	handlers, err := handler.NewHandlers(vault.Services, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
