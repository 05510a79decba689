package models

// DisplayMode is the mode of the kiosk screen.
type DisplayMode int

const (
	// DisplayIdle shows the "tap your card" prompt.
	DisplayIdle DisplayMode = iota
	// DisplayShowingSuccess shows an approved tap.
	DisplayShowingSuccess
	// DisplayShowingError shows a rejected tap.
	DisplayShowingError
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayShowingSuccess:
		return "success"
	case DisplayShowingError:
		return "error"
	default:
		return "idle"
	}
}

// DisplayState is the value rendered by the kiosk. Outcome is nil while
// Mode is DisplayIdle, a ScanSuccess in DisplayShowingSuccess and a
// ScanFailure in DisplayShowingError.
type DisplayState struct {
	Mode    DisplayMode
	Outcome ScanOutcome
}

// IdleState returns the initial kiosk state.
func IdleState() DisplayState {
	return DisplayState{Mode: DisplayIdle}
}

// Success returns the approved-tap payload when the state holds one.
func (s DisplayState) Success() (ScanSuccess, bool) {
	v, ok := s.Outcome.(ScanSuccess)
	return v, ok && s.Mode == DisplayShowingSuccess
}

// Failure returns the rejected-tap payload when the state holds one.
func (s DisplayState) Failure() (ScanFailure, bool) {
	v, ok := s.Outcome.(ScanFailure)
	return v, ok && s.Mode == DisplayShowingError
}
