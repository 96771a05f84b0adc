package http

import (
	"net/http"

	"github.com/MKhiriev/nudge/internal/utils"
)

// health reports the database round trip. A failed ping answers 503 with
// the same body shape.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Check(r.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	_, _ = utils.WriteJSON(w, report, status)
}
