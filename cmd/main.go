package main

import (
	"context"
	"net/http"
	"os"

	"espoir/internal/services"
	"espoir/internal/shared"
	"espoir/internal/storage"
	"espoir/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatal("failed to open local storage", "err", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	kv, err := storage.NewSQLiteKV(db)
	if err != nil {
		logger.Fatal("failed to migrate local storage", "err", err)
	}
	gateway := storage.NewGateway(kv)

	deviceID, err := gateway.DeviceID(context.Background())
	if err != nil {
		logger.Warn("failed to resolve device id", "err", err)
	}

	var catalog services.Catalog
	if config.API.TMDBAPIKey != "" {
		svc, err := services.NewTMDBService(config.API.TMDBBaseURL, config.API.TMDBAPIKey, config.API.RateLimit, http.DefaultClient)
		if err != nil {
			logger.Fatal("failed to construct catalog client", "err", err)
		}
		catalog = svc
	}
	auth := services.NewAuthService(config.API.AuthBaseURL, deviceID, http.DefaultClient)

	container := store.New(catalog, auth, gateway, logger)
	defer container.Close()

	runner := NewRunner(RunnerOpts{
		Config:    config,
		Container: container,
		Catalog:   catalog,
		Gateway:   gateway,
		Logger:    logger,
	})

	app := &cli.Command{
		Name:     "espoir",
		Usage:    "Browse movies, keep favorites, stay signed in",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatal(err)
	}
}
