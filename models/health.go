package models

import "time"

// Health status values reported by the health endpoint.
const (
	HealthOK       = "ok"
	HealthDegraded = "error"
)

// HealthReport is the body of the health endpoint.
type HealthReport struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	LatencyMs int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
}

// Healthy reports whether the database answered the probe.
func (h HealthReport) Healthy() bool {
	return h.Status == HealthOK
}
