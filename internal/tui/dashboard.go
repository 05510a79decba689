package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fare-card/internal/render"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/charmbracelet/lipgloss"
)

type dashboardModel struct {
	session   models.Session
	dashboard models.Dashboard
	info      models.UserInfo
	hasInfo   bool
	loading   bool
	status    string
}

// balance prefers the latest refreshed header over the dashboard snapshot.
func (m dashboardModel) balance() float64 {
	if m.hasInfo {
		return m.info.Balance
	}
	return m.dashboard.Balance
}

func (m dashboardModel) riderName() string {
	if m.hasInfo {
		return strings.TrimSpace(m.info.Name + " " + m.info.Surname)
	}
	return strings.TrimSpace(m.session.Name + " " + m.session.Surname)
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString("Olá, ")
	b.WriteString(valueOrDash(m.riderName()))
	b.WriteString("\nID: ")
	b.WriteString(valueOrDash(m.session.UserID))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Carregando...\n")
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			summaryBox("Saldo Disponível", render.FormatBRL(m.balance())),
			summaryBox("Viagens este Mês", fmt.Sprintf("%d", m.dashboard.TripsMonth)),
			summaryBox("Gasto no Mês", render.FormatBRL(m.dashboard.SpentMonth)),
		))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("INÍCIO", strings.TrimRight(b.String(), "\n"),
		"b: cobranças │ f: passagens │ c: copiar ID │ r: atualizar │ v: sobre │ x: sair da conta │ q: sair")
}

func summaryBox(title, value string) string {
	return summaryBoxStyle.Render(helpStyle.Render(title) + "\n" + titleStyle.Render(value))
}
