package http

import (
	"time"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/metrics"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics  metrics.Recorder
	gatherer prometheus.Gatherer
	limiter  *rateLimiter
	timeout  time.Duration

	logger *logger.Logger
}

// NewHandler builds the API handler. recorder and gatherer back the
// request metrics and the /metrics endpoint.
func NewHandler(services *service.Services, cfg config.Server, recorder metrics.Recorder, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  recorder,
		gatherer: gatherer,
		limiter:  newRateLimiter(cfg.RateLimit, cfg.RateBurst),
		timeout:  cfg.RequestTimeout,
		logger:   logger,
	}
}
