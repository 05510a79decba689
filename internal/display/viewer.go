// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package display

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/scan"
	"github.com/MKhiriev/go-fare-card/models"
)

// Viewer is the single owner of a display state. Feed events and timer
// firings are serialized through one select loop in Run, and OnChange is
// only ever called from that goroutine.
type Viewer struct {
	machine  *Machine
	onChange func(models.DisplayState)
	logger   *logger.Logger
	now      func() time.Time
}

// NewViewer returns a viewer that publishes every new state through
// onChange. onChange must not block for long: it runs on the actor
// goroutine.
func NewViewer(resetTimeout time.Duration, onChange func(models.DisplayState), log *logger.Logger) *Viewer {
	if onChange == nil {
		onChange = func(models.DisplayState) {}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Viewer{
		machine:  NewMachine(resetTimeout),
		onChange: onChange,
		logger:   log,
		now:      time.Now,
	}
}

// Run consumes events until ctx is cancelled. A closed events channel ends
// the stream of updates but keeps the pending reset, so a result on screen
// still goes back to idle. The timer is stopped when Run returns.
func (v *Viewer) Run(ctx context.Context, events <-chan models.FeedEvent) {
	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	defer stopTimer(timer)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if v.handle(ev) {
				stopTimer(timer)
				timer.Reset(v.machine.ResetTimeout())
				v.onChange(v.machine.State())
			}

		case <-timer.C:
			now := v.now()
			if state, changed := v.machine.Expire(now); changed {
				v.logger.Debug().Msg("scan result expired, back to idle")
				v.onChange(state)
			} else if deadline, armed := v.machine.Deadline(); armed {
				timer.Reset(deadline.Sub(now))
			}
		}
	}
}

// handle applies one feed event and reports whether a new outcome was shown.
func (v *Viewer) handle(ev models.FeedEvent) bool {
	switch ev.Kind {
	case models.FeedConnected:
		v.logger.Info().Msg("scan feed connected")
		return false

	case models.FeedDisconnected:
		if ev.Err != nil {
			v.logger.Err(ev.Err).Msg("scan feed disconnected")
		} else {
			v.logger.Info().Msg("scan feed closed")
		}
		return false
	}

	outcome, err := scan.Classify(ev.Data)
	if err != nil {
		if errors.Is(err, scan.ErrMalformedMessage) {
			v.logger.Warn().Err(err).Str("raw", string(ev.Data)).Msg("dropping scan message")
		}
		return false
	}

	state := v.machine.Apply(outcome, v.now())
	v.logger.Debug().Str("mode", state.Mode.String()).Msg("scan result received")
	return true
}

// stopTimer stops t and drains a pending fire so Reset starts clean.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
