// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/models"
)

// ItemCountsPublisher receives the per-status counts of every digest run.
type ItemCountsPublisher interface {
	SetItemCounts(counts map[models.Status]int)
}

// DigestWorker periodically classifies every active item and publishes how
// many fall into each status.
type DigestWorker struct {
	digest    service.DigestService
	publisher ItemCountsPublisher
	interval  time.Duration

	logger *logger.Logger
}

// NewDigestWorker constructs a [DigestWorker] running every interval.
func NewDigestWorker(digest service.DigestService, publisher ItemCountsPublisher, interval time.Duration, logger *logger.Logger) *DigestWorker {
	return &DigestWorker{
		digest:    digest,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

// Run computes the digest once right away and then on every tick.
func (d *DigestWorker) Run(ctx context.Context) {
	d.logger.Info().Dur("interval", d.interval).Msg("digest worker started")
	defer d.logger.Info().Msg("digest worker stopped")

	d.runOnce(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.runOnce(ctx)
		}
	}
}

func (d *DigestWorker) runOnce(ctx context.Context) {
	counts, err := d.digest.CountByStatus(ctx)
	if err != nil {
		// keep the previous gauges
		d.logger.Err(err).Msg("digest run failed")
		return
	}

	d.publisher.SetItemCounts(counts)
	d.logger.Debug().
		Int("critical", counts[models.StatusCritical]).
		Int("approaching", counts[models.StatusApproaching]).
		Int("safe", counts[models.StatusSafe]).
		Msg("digest published")
}
