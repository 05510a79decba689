package tui

import (
	"github.com/MKhiriev/go-fare-card/models"
)

type loginDoneMsg struct {
	session models.Session
	err     error
}

type registerDoneMsg struct {
	login string
	err   error
}

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	err       error
}

// balanceRefreshedMsg is delivered by the background refresh job. ch is
// the channel it arrived on; messages from a previous login are dropped.
type balanceRefreshedMsg struct {
	ch   chan balanceRefreshedMsg
	info models.UserInfo
	err  error
}

type balanceHistoryLoadedMsg struct {
	entries []models.BalanceEntry
	err     error
}

type fareHistoryLoadedMsg struct {
	entries []models.FareEntry
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type errMsg struct {
	err error
}
