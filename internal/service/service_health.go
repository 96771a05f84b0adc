package service

import (
	"context"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

type healthService struct {
	pinger store.Pinger
	now    func() time.Time
	logger *logger.Logger
}

// NewHealthService checks the database behind pinger.
func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, now: time.Now, logger: logger}
}

// Check pings the database and reports how long it took.
func (s *healthService) Check(ctx context.Context) models.HealthReport {
	started := s.now()
	err := s.pinger.PingContext(ctx)
	finished := s.now()

	report := models.HealthReport{
		Status:    models.HealthOK,
		Timestamp: finished.UTC(),
		LatencyMs: finished.Sub(started).Milliseconds(),
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("database health check failed")
		report.Status = models.HealthDegraded
		report.Error = "database unreachable"
	}
	return report
}
