// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fare-card/internal/render"
	"github.com/MKhiriev/go-fare-card/models"
)

const historyPageSize = 10

// pager tracks the current page over n rows.
type pager struct {
	page int
	rows int
}

func (p pager) pages() int {
	if p.rows == 0 {
		return 1
	}
	return (p.rows + historyPageSize - 1) / historyPageSize
}

// bounds returns the half-open row range of the current page.
func (p pager) bounds() (int, int) {
	from := p.page * historyPageSize
	to := min(from+historyPageSize, p.rows)
	return from, to
}

func (p pager) next() pager {
	if p.page < p.pages()-1 {
		p.page++
	}
	return p
}

func (p pager) prev() pager {
	if p.page > 0 {
		p.page--
	}
	return p
}

func (p pager) footer() string {
	return fmt.Sprintf("Página %d de %d", p.page+1, p.pages())
}

type balanceHistoryModel struct {
	entries []models.BalanceEntry
	pager   pager
	loading bool
}

func (m balanceHistoryModel) withEntries(entries []models.BalanceEntry) balanceHistoryModel {
	m.entries = entries
	m.pager = pager{rows: len(entries)}
	m.loading = false
	return m
}

func (m balanceHistoryModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Carregando...")
	case len(m.entries) == 0:
		b.WriteString("Nenhuma cobrança encontrada")
	default:
		b.WriteString(fmt.Sprintf("%-19s  %-17s  %12s  %14s  %15s\n",
			"Data", "Método", "Valor", "Saldo Anterior", "Saldo Posterior"))
		from, to := m.pager.bounds()
		for _, e := range m.entries[from:to] {
			b.WriteString(fmt.Sprintf("%-19s  %s  %12s  %14s  %15s\n",
				render.FormatTimestamp(e.Date),
				padRight(render.PaymentMethodLabel(e.Method), 17),
				render.FormatBRL(e.Value),
				render.FormatBRL(e.BalanceBefore),
				render.FormatBRL(e.BalanceAfter),
			))
		}
		b.WriteString("\n")
		b.WriteString(m.pager.footer())
	}

	return renderPage("HISTÓRICO DE COBRANÇAS", b.String(), "←/→: página │ r: atualizar │ esc: voltar")
}

type fareHistoryModel struct {
	entries []models.FareEntry
	pager   pager
	loading bool
}

func (m fareHistoryModel) withEntries(entries []models.FareEntry) fareHistoryModel {
	m.entries = entries
	m.pager = pager{rows: len(entries)}
	m.loading = false
	return m
}

func (m fareHistoryModel) View() string {
	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Carregando...")
	case len(m.entries) == 0:
		b.WriteString("Nenhuma passagem encontrada")
	default:
		b.WriteString(fmt.Sprintf("%-19s  %-30s  %12s\n", "Data", "Linha", "Valor"))
		from, to := m.pager.bounds()
		for _, e := range m.entries[from:to] {
			b.WriteString(fmt.Sprintf("%-19s  %s  %12s\n",
				render.FormatTimestamp(e.Date),
				padRight(fitText(e.BusName, 30), 30),
				render.FormatBRL(e.Fare),
			))
		}
		b.WriteString("\n")
		b.WriteString(m.pager.footer())
	}

	return renderPage("HISTÓRICO DE PASSAGENS", b.String(), "←/→: página │ r: atualizar │ esc: voltar")
}
