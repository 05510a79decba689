package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor   = lipgloss.Color("#DC2626")
	positiveColor = lipgloss.Color("#16A34A")
	mutedColor    = lipgloss.Color("#9CA3AF")
	textColor     = lipgloss.Color("#1F2937")

	cardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#404040")).
			Padding(1, 2)

	cardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	cardMutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	cardDebitStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	cardValueStyle  = lipgloss.NewStyle().Bold(true)
	cardFooterStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			MarginTop(1)
)

var iconGlyphs = map[Icon]string{
	IconScan:   "((•))",
	IconCheck:  "[✓]",
	IconPerson: "[?]",
	IconWallet: "[$]",
	IconAlert:  "[!]",
}

const minCardWidth = 28

// Terminal draws card as a bordered box at most width cells wide.
func Terminal(card Card, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	inner := width - cardBoxStyle.GetHorizontalFrameSize()

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)
	accent := toneStyle(card.Tone)

	rows := []string{
		center.Render(accent.Render(iconGlyphs[card.Icon])),
		"",
	}

	switch card.Tone {
	case TonePositive:
		rows = append(rows,
			center.Render(cardTitleStyle.Render(strings.ToUpper(card.Title))),
			center.Render(accent.Render(strings.ToUpper(card.Subtitle))),
			"",
		)
		for _, l := range card.Lines {
			rows = append(rows, lineRow(l, inner))
		}
	case ToneNegative:
		rows = append(rows,
			center.Render(accent.Render(strings.ToUpper(card.Title))),
			center.Render(cardMutedStyle.Render(card.Subtitle)),
		)
	default:
		rows = append(rows,
			center.Render(cardTitleStyle.Render(strings.ToUpper(card.Title))),
			center.Render(accent.Render(card.Subtitle)),
		)
	}

	if card.Badge != "" {
		rows = append(rows, "", center.Render(accent.Render(strings.ToUpper(card.Badge))))
	}
	if card.Footer != "" {
		rows = append(rows, center.Inherit(cardFooterStyle).Render(strings.ToUpper(card.Footer)))
	}

	return cardBoxStyle.Width(width - cardBoxStyle.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func lineRow(l Line, width int) string {
	value := cardValueStyle.Render(l.Value)
	if l.Debit {
		value = cardDebitStyle.Render(l.Value)
	}
	label := cardMutedStyle.Render(strings.ToUpper(l.Label))

	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

func toneStyle(t Tone) lipgloss.Style {
	switch t {
	case TonePositive:
		return lipgloss.NewStyle().Bold(true).Foreground(positiveColor)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	}
}
