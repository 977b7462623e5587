package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/akarpov/memstats/internal/adapter"
	"github.com/akarpov/memstats/internal/client"
	"github.com/akarpov/memstats/internal/config"
	"github.com/akarpov/memstats/internal/identity"
	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/service"
	"github.com/akarpov/memstats/internal/store"
	"github.com/akarpov/memstats/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewClientLogger("memstats")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	clientID, err := identity.LoadOrCreateClientID(cfg.Storage.ClientIDFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load client identity")
	}

	remote := adapter.NewHTTPRemoteStats(adapter.HTTPClientConfig{
		BaseURL:        cfg.Adapter.BaseURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		ProbeTimeout:   cfg.Adapter.ProbeTimeout,
	})

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, remote, clientID, cfg, log)
	background := workers.NewWorkers(services.Stats, cfg.Workers, log)

	// config flags were parsed by GetClientConfig; what remains is the
	// subcommand and its own flags
	app := client.NewApp(services, background, log)
	if err = app.Run(context.Background(), flag.Args()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
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
