package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/render"
	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/MKhiriev/go-fare-card/models"
)

const stateEvent = "state"

// stateEventData is the payload of one "state" event. The page script
// swaps the card markup for HTML.
type stateEventData struct {
	Mode string `json:"mode"`
	HTML string `json:"html"`
}

// viewerPage serves the kiosk page showing the idle card. The page opens
// the event stream itself.
func (h *Handler) viewerPage(w http.ResponseWriter, r *http.Request) {
	busID, _ := utils.GetBusIDFromContext(r.Context())

	page := render.Page{
		BusID:     busID,
		EventsURL: "/viewer/" + busID + "/events",
		Card:      render.Present(models.IdleState()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WritePage(w, page); err != nil {
		logger.FromRequest(r).Err(err).Str("bus_id", busID).Msg("cannot write viewer page")
	}
}

// viewerEvents streams the display state of one page instance. The viewer
// session lives exactly as long as the request.
func (h *Handler) viewerEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	busID, _ := utils.GetBusIDFromContext(ctx)

	rc := http.NewResponseController(w)

	session, err := h.services.ViewerService.Open(ctx, busID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer session.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeState(w, session.State()); err != nil {
		log.Err(err).Msg("cannot write initial state")
		return
	}
	if err := rc.Flush(); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrStreamingUnsupported, err)).Msg("cannot stream viewer events")
		return
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("viewer stream closed by client")
			return
		case state, ok := <-session.Updates():
			if !ok {
				return
			}
			if err := writeState(w, state); err != nil {
				log.Err(err).Msg("cannot write state")
				return
			}
		case <-heartbeat.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}

// writeState writes state as one "state" server-sent event.
func writeState(w io.Writer, state models.DisplayState) error {
	markup, err := render.HTML(render.Present(state))
	if err != nil {
		return err
	}

	data, err := json.Marshal(stateEventData{Mode: state.Mode.String(), HTML: markup})
	if err != nil {
		return fmt.Errorf("marshal state event: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", stateEvent, data)
	return err
}
