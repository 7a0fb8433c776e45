package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-life-vault/internal/app"
	"github.com/MKhiriev/go-life-vault/internal/client"
	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("vaultctl")

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "warn"
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vault, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling vault")
	}

	err = client.NewApp(vault.Services, log).Run(ctx, args)
	_ = vault.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vaultctl:", err)
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}
