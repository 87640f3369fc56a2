package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/adapter"
	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/handler"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/server"
	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("parts-registry")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping the default")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("search_address", cfg.Search.Address).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	var search adapter.SearchAdapter
	if cfg.Search.Address != "" {
		search, err = adapter.NewHTTPSearchAdapter(cfg.Search, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating search adapter")
		}
	} else {
		log.Info().Msg("search address is not set, search selections are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, search, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
