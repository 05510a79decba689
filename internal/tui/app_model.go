package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errEmptyCredentials = errors.New("login and password are required")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenDashboard
	screenBalanceHistory
	screenFareHistory
)

type appModel struct {
	ctx             context.Context
	auth            service.ClientAuthService
	account         service.ClientAccountService
	refresh         service.BalanceRefreshJob
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo
	logger          *logger.Logger

	currentScreen screen

	welcome        welcomeModel
	login          loginModel
	register       registerModel
	dashboard      dashboardModel
	balanceHistory balanceHistoryModel
	fareHistory    fareHistoryModel

	// refreshCh is the delivery channel of the running refresh job, nil
	// while logged out.
	refreshCh chan balanceRefreshedMsg

	// spinner is shown while a request of the current screen is pending.
	spinner spinner.Model

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, refreshInterval time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:             ctx,
		auth:            services.AuthService,
		account:         services.AccountService,
		refresh:         services.RefreshJob,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		logger:          log,
		currentScreen:   screenWelcome,
		welcome:         newWelcomeModel(),
		login:           newLoginModel(),
		register:        newRegisterModel(),
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cursorStyle)),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// pending reports whether the current screen waits for the fare API.
func (m appModel) pending() bool {
	switch m.currentScreen {
	case screenLogin:
		return m.login.submitting
	case screenRegister:
		return m.register.submitting
	case screenDashboard:
		return m.dashboard.loading
	case screenBalanceHistory:
		return m.balanceHistory.loading
	case screenFareHistory:
		return m.fareHistory.loading
	}
	return false
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				return m.dismissError(), nil
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		return m.enterDashboard(msg.session)
	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.register = newRegisterModel()
		m.login = m.login.prefill(msg.login)
		m.login.status = "Conta criada! Entre com sua senha"
		m.currentScreen = screenLogin
		return m, nil
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.dashboard.dashboard = msg.dashboard
		return m, nil
	case balanceRefreshedMsg:
		if msg.ch != m.refreshCh {
			return m, nil
		}
		if msg.err != nil {
			if needsRelogin(msg.err) {
				m.showErrorf(msg.err)
			}
			return m, waitForRefresh(m.refreshCh)
		}
		m.dashboard.info = msg.info
		m.dashboard.hasInfo = true
		return m, waitForRefresh(m.refreshCh)
	case balanceHistoryLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrNotFound) {
			m.balanceHistory.loading = false
			m.showErrorf(msg.err)
			return m, nil
		}
		m.balanceHistory = m.balanceHistory.withEntries(msg.entries)
		return m, nil
	case fareHistoryLoadedMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrNotFound) {
			m.fareHistory.loading = false
			m.showErrorf(msg.err)
			return m, nil
		}
		m.fareHistory = m.fareHistory.withEntries(msg.entries)
		return m, nil
	case copiedMsg:
		m.dashboard.status = "ID copiado!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.dashboard.status = ""
		return m, nil
	case errMsg:
		m.showErrorf(msg.err)
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenBalanceHistory:
		return m.updateBalanceHistory(msg)
	case screenFareHistory:
		return m.updateFareHistory(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenBalanceHistory:
		body = m.balanceHistory.View()
	case screenFareHistory:
		body = m.fareHistory.View()
	}

	if m.pending() {
		body += "\n" + m.spinner.View() + " Aguarde"
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.logger.Err(err).Int("screen", int(m.currentScreen)).Msg("rider action failed")
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: humanizeError(err), relogin: needsRelogin(err)}
}

func (m appModel) dismissError() appModel {
	relogin := m.errorOverlay.relogin
	m.showError = false
	m.errorOverlay = errorOverlayModel{}
	if relogin && m.refreshCh != nil {
		return m.logout()
	}
	return m
}

func (m appModel) enterDashboard(session models.Session) (tea.Model, tea.Cmd) {
	m.dashboard = dashboardModel{session: session, loading: true}
	m.currentScreen = screenDashboard
	m.refreshCh = make(chan balanceRefreshedMsg, 1)

	m.startRefresh(m.refreshCh)
	return m, tea.Batch(m.cmdLoadDashboard(), waitForRefresh(m.refreshCh))
}

// logout stops the refresh job, forgets the session and returns to login.
func (m appModel) logout() appModel {
	m.refresh.Stop()
	if m.refreshCh != nil {
		close(m.refreshCh)
		m.refreshCh = nil
	}
	m.auth.Logout()

	m.dashboard = dashboardModel{}
	m.balanceHistory = balanceHistoryModel{}
	m.fareHistory = fareHistoryModel{}
	m.login = newLoginModel()
	m.currentScreen = screenLogin
	return m
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
			return m, textinput.Blink
		}
		m.currentScreen = screenRegister
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login.status = ""
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			creds := m.login.credentials()
			if creds.Login == "" || creds.Password == "" {
				m.showError = true
				m.errorOverlay = errorOverlayModel{message: "Informe login e senha"}
				return m, nil
			}
			m.login.status = ""
			m.login.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			req, err := m.register.request()
			if err != nil {
				m.showErrorf(err)
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.balance):
		m.balanceHistory = balanceHistoryModel{loading: true}
		m.currentScreen = screenBalanceHistory
		return m, m.cmdLoadBalanceHistory()
	case key.Matches(keyMsg, keys.fares):
		m.fareHistory = fareHistoryModel{loading: true}
		m.currentScreen = screenFareHistory
		return m, m.cmdLoadFareHistory()
	case key.Matches(keyMsg, keys.copyID):
		if m.dashboard.session.UserID == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.dashboard.session.UserID)
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		return m.logout(), nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateBalanceHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.prevPage):
		m.balanceHistory.pager = m.balanceHistory.pager.prev()
	case key.Matches(keyMsg, keys.nextPage):
		m.balanceHistory.pager = m.balanceHistory.pager.next()
	case key.Matches(keyMsg, keys.refresh):
		m.balanceHistory.loading = true
		return m, m.cmdLoadBalanceHistory()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateFareHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.prevPage):
		m.fareHistory.pager = m.fareHistory.pager.prev()
	case key.Matches(keyMsg, keys.nextPage):
		m.fareHistory.pager = m.fareHistory.pager.next()
	case key.Matches(keyMsg, keys.refresh):
		m.fareHistory.loading = true
		return m, m.cmdLoadFareHistory()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, creds)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		_, err := auth.Register(ctx, req)
		return registerDoneMsg{login: req.Email, err: err}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	account := m.account
	return func() tea.Msg {
		d, err := account.Dashboard(ctx)
		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}

func (m appModel) cmdLoadBalanceHistory() tea.Cmd {
	ctx := m.ctx
	account := m.account
	return func() tea.Msg {
		entries, err := account.BalanceHistory(ctx)
		return balanceHistoryLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdLoadFareHistory() tea.Cmd {
	ctx := m.ctx
	account := m.account
	return func() tea.Msg {
		entries, err := account.FareHistory(ctx)
		return fareHistoryLoadedMsg{entries: entries, err: err}
	}
}

// startRefresh runs the refresh job, delivering only the latest result
// into ch.
func (m appModel) startRefresh(ch chan balanceRefreshedMsg) {
	m.refresh.Start(m.ctx, m.refreshInterval, func(info models.UserInfo, err error) {
		msg := balanceRefreshedMsg{ch: ch, info: info, err: err}
		select {
		case <-ch:
		default:
		}
		ch <- msg
	})
}

func waitForRefresh(ch chan balanceRefreshedMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
