package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/MKhiriev/go-fare-card/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidBusID:          http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	ErrTooManySessions:               http.StatusTooManyRequests,
	ErrStreamingUnsupported:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the {"error": "..."} body the fare API uses.
// Internal errors are logged and not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		msg = http.StatusText(status)
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
