package main

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/nudge/internal/adapter"
	"github.com/MKhiriev/nudge/internal/client"
	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/prefs"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/internal/tui"
	"github.com/MKhiriev/nudge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the log file location is part of the config
		logger.NewLogger("nudge-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("nudge-client", cfg.Client.LogPath)

	ctx := context.Background()
	kv, err := store.NewLocalKeyValue(ctx, cfg.Local, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := kv.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing local storage")
		}
	}()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	classifier := expiry.NewClassifier(expiry.WithLocation(cfg.Location))
	services := service.NewClientServices(kv, serverAdapter, classifier, log)
	session := expiry.NewFilterSession(prefs.NewStore(kv, log))

	ui := tui.New(services.AuthService, session, buildInfo, log)
	app, err := client.NewApp(services, ui, cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
}
