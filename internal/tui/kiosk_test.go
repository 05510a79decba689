package tui

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/render"
	"github.com/MKhiriev/go-fare-card/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	updates chan models.DisplayState
	closed  bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{updates: make(chan models.DisplayState, 1)}
}

func (s *fakeSession) BusID() string                       { return "0b7e3c1a-7d2f-4c55-9c0e-2f4a8e6d1b90" }
func (s *fakeSession) Updates() <-chan models.DisplayState { return s.updates }
func (s *fakeSession) State() models.DisplayState          { return models.IdleState() }
func (s *fakeSession) Close()                              { s.closed = true }

func TestKioskModel_InitialIdle(t *testing.T) {
	m := newKioskModel(newFakeSession(), logger.Nop())

	view := m.View()

	assert.Contains(t, view, strings.ToUpper(render.IdleTitle))
	assert.Contains(t, view, render.IdleSubtitle)
	assert.Contains(t, view, "0b7e3c1a-7d2f-4c55-9c0e-2f4a8e6d1b90")
}

func TestKioskModel_ShowsPublishedState(t *testing.T) {
	session := newFakeSession()
	m := newKioskModel(session, logger.Nop())

	session.updates <- models.DisplayState{
		Mode: models.DisplayShowingError,
		Outcome: models.ScanFailure{
			Kind:    models.ErrorKindInsufficientBalance,
			Message: "Saldo insuficiente",
		},
	}
	msg := m.Init()()
	require.IsType(t, kioskStateMsg{}, msg)

	next, cmd := m.Update(msg)
	m = next.(kioskModel)

	assert.NotNil(t, cmd)
	view := m.View()
	assert.Contains(t, view, strings.ToUpper(render.InsufficientBalanceTitle))
	assert.Contains(t, view, render.InsufficientBalanceMessage)
	assert.NotContains(t, view, "Saldo insuficiente")
}

func TestKioskModel_QuitsWhenSessionCloses(t *testing.T) {
	session := newFakeSession()
	m := newKioskModel(session, logger.Nop())
	close(session.updates)

	msg := m.Init()()
	require.Equal(t, kioskClosedMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestKioskModel_QuitKey(t *testing.T) {
	m := newKioskModel(newFakeSession(), logger.Nop())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestKioskModel_WindowResize(t *testing.T) {
	m := newKioskModel(newFakeSession(), logger.Nop())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, next.(kioskModel).width)
}
