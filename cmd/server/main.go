package main

import (
	"context"
	"os"

	"github.com/MKhiriev/nudge/internal/config"
	handler "github.com/MKhiriev/nudge/internal/handler/http"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/metrics"
	"github.com/MKhiriev/nudge/internal/server"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/internal/workers"
	"github.com/MKhiriev/nudge/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("nudge-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Linked() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("time_zone", cfg.Location.String()).
		Dur("digest_interval", cfg.Workers.DigestInterval).
		Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	h := handler.NewHandler(services, cfg.Server, collector, registry, log)
	bgWorkers := workers.NewWorkers(
		workers.NewDigestWorker(services.DigestService, collector, cfg.Workers.DigestInterval, log),
	)

	srv, err := server.NewServer(h.Init(), bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
