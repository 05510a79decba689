// Package display holds the kiosk display state machine and the actor that
// drives it from a scan feed.
package display

import (
	"time"

	"github.com/MKhiriev/go-fare-card/models"
)

// DefaultResetTimeout is how long a scan result stays on screen before the
// kiosk returns to idle.
const DefaultResetTimeout = 8 * time.Second

// Machine is the clock-free display reducer. It keeps exactly one reset
// deadline; a newer outcome replaces the pending one. Machine is not safe
// for concurrent use.
type Machine struct {
	resetTimeout time.Duration
	state        models.DisplayState
	deadline     time.Time
	armed        bool
}

// NewMachine returns a machine in the idle state. A non-positive timeout
// falls back to DefaultResetTimeout.
func NewMachine(resetTimeout time.Duration) *Machine {
	if resetTimeout <= 0 {
		resetTimeout = DefaultResetTimeout
	}
	return &Machine{
		resetTimeout: resetTimeout,
		state:        models.IdleState(),
	}
}

// State returns the current display state.
func (m *Machine) State() models.DisplayState {
	return m.state
}

// ResetTimeout returns the configured display duration.
func (m *Machine) ResetTimeout() time.Duration {
	return m.resetTimeout
}

// Apply shows the outcome from any state and re-arms the reset deadline at
// now plus the reset timeout. A nil outcome leaves the machine untouched.
func (m *Machine) Apply(outcome models.ScanOutcome, now time.Time) models.DisplayState {
	switch outcome.(type) {
	case models.ScanSuccess:
		m.state = models.DisplayState{Mode: models.DisplayShowingSuccess, Outcome: outcome}
	case models.ScanFailure:
		m.state = models.DisplayState{Mode: models.DisplayShowingError, Outcome: outcome}
	default:
		return m.state
	}

	m.deadline = now.Add(m.resetTimeout)
	m.armed = true
	return m.state
}

// Expire returns the machine to idle when the deadline is armed and now has
// reached it. The boolean reports whether the state changed. Firing before
// the current deadline, as a stale timer would, does nothing.
func (m *Machine) Expire(now time.Time) (models.DisplayState, bool) {
	if !m.armed || now.Before(m.deadline) {
		return m.state, false
	}

	m.state = models.IdleState()
	m.deadline = time.Time{}
	m.armed = false
	return m.state, true
}

// Deadline returns the pending reset deadline, if any.
func (m *Machine) Deadline() (time.Time, bool) {
	return m.deadline, m.armed
}
