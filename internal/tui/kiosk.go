// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/render"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultKioskWidth = 48

type kioskStateMsg struct {
	state models.DisplayState
}

type kioskClosedMsg struct{}

// kioskModel renders one viewer session full screen.
type kioskModel struct {
	session service.ViewerSession
	state   models.DisplayState
	width   int

	logger *logger.Logger
}

func newKioskModel(session service.ViewerSession, log *logger.Logger) kioskModel {
	return kioskModel{
		session: session,
		state:   session.State(),
		width:   defaultKioskWidth,
		logger:  log,
	}
}

func (m kioskModel) Init() tea.Cmd {
	return waitForState(m.session.Updates())
}

func (m kioskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case kioskStateMsg:
		m.state = msg.state
		m.logger.Debug().Str("mode", msg.state.Mode.String()).Msg("kiosk state")
		return m, waitForState(m.session.Updates())
	case kioskClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m kioskModel) View() string {
	card := render.Terminal(render.Present(m.state), m.width)
	return card + "\n" + helpStyle.Render("Ônibus "+m.session.BusID()+" │ q: sair")
}

func waitForState(updates <-chan models.DisplayState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return kioskClosedMsg{}
		}
		return kioskStateMsg{state: state}
	}
}
