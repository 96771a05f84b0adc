package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nudge/internal/app"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrItemNotFound:            http.StatusNotFound,
	service.ErrCorruptItemData:         http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrItemNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrInvalidItemID:       http.StatusBadRequest,
	ErrInvalidStatusFilter: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Server
// errors are reported without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = http.StatusText(status)
	case http.StatusUnauthorized:
		// do not tell unknown emails apart from wrong passwords
		message = app.MsgInvalidEmailPassword
	}
	utils.WriteError(w, message, status)
}
