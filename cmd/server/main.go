// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/promptdock/promptdock/internal/config"
	handlerhttp "github.com/promptdock/promptdock/internal/handler/http"
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/internal/server"
	"github.com/promptdock/promptdock/internal/service"
	"github.com/promptdock/promptdock/internal/store"
	"github.com/promptdock/promptdock/internal/workers"
	"github.com/promptdock/promptdock/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("promptdock-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storage, err := store.NewSQLiteStorage(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer storage.Close()

	services := service.NewServices(cfg.App)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handler := handlerhttp.NewHandler(services, storage, buildInfo, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Storage.BackupRetention > 0 {
		retention := workers.NewRetentionWorker(storage, cfg.Storage.BackupRetention, time.Hour, log)
		workers.NewWorkers(retention).Run(ctx)
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
