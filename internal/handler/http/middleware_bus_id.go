package http

import (
	"net/http"

	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/go-chi/chi/v5"
)

// withBusID rejects requests whose {id} is not a UUID and stores the bus id
// in the request context.
func (h *Handler) withBusID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		busID := chi.URLParam(r, "id")
		if !utils.IsUUID(busID) {
			writeError(w, r, service.ErrInvalidBusID)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithBusID(r.Context(), busID)))
	})
}
