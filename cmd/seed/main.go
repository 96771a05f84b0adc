package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

func main() {
	log := logger.NewLogger("nudge-seed")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	s := &seeder{auth: services.AuthService, items: services.ItemService, logger: log}
	today := expiry.NewClassifier(expiry.WithLocation(cfg.Location)).Today()
	demo := models.User{Email: cfg.App.DemoEmail, Password: cfg.App.DemoPassword, Name: "Demo User"}

	n, err := s.seed(ctx, demo, today)
	switch {
	case errors.Is(err, errAlreadySeeded):
		log.Warn().Str("email", demo.Email).Msg("demo user already exists, delete it to re-seed")
	case err != nil:
		log.Fatal().Err(err).Int("created", n).Msg("seeding failed")
	default:
		log.Info().Int("items", n).Str("email", demo.Email).Msg("seed complete")
	}
}
