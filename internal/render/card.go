// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render projects kiosk display states into view models and draws
// them for the terminal and the browser. Everything here is pure: no I/O
// beyond the writer handed in, no timers.
package render

import "github.com/MKhiriev/go-fare-card/models"

// Tone is the color family of a card.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Icon names the pictogram shown on a card.
type Icon string

const (
	IconScan   Icon = "scan"
	IconCheck  Icon = "check"
	IconPerson Icon = "person"
	IconWallet Icon = "wallet"
	IconAlert  Icon = "alert"
)

// Card texts.
const (
	IdleTitle    = "Aproxime"
	IdleSubtitle = "o seu cartão do leitor"

	UserNotFoundTitle   = "Usuário Não Encontrado"
	UserNotFoundMessage = "Este cartão não está cadastrado no sistema."

	InsufficientBalanceTitle   = "Saldo Insuficiente"
	InsufficientBalanceMessage = "Recarregue seu cartão para continuar."

	UnknownErrorTitle   = "Erro Desconhecido"
	UnknownErrorMessage = "Ocorreu um erro ao processar."

	LabelFare          = "Custo da Passagem"
	LabelBalanceBefore = "Saldo Anterior"
	LabelBalanceAfter  = "Saldo Atual"

	BadgeGranted = "Acesso Liberado"
	BadgeDenied  = "Acesso Negado"

	Footer = "Sistema de Validação"
)

// Line is one labelled amount on a success card.
type Line struct {
	Label string
	Value string
	Debit bool
}

// Card is the view model of one display state.
type Card struct {
	Mode     models.DisplayMode
	Tone     Tone
	Icon     Icon
	Title    string
	Subtitle string
	Image    string
	Lines    []Line
	Badge    string
	Footer   string
}

// Present maps a display state to its card. Amounts are formatted as given;
// nothing is recomputed.
func Present(state models.DisplayState) Card {
	if s, ok := state.Success(); ok {
		return successCard(s)
	}
	if f, ok := state.Failure(); ok {
		return failureCard(f)
	}
	return idleCard()
}

func idleCard() Card {
	return Card{
		Mode:     models.DisplayIdle,
		Tone:     ToneNeutral,
		Icon:     IconScan,
		Title:    IdleTitle,
		Subtitle: IdleSubtitle,
		Footer:   Footer,
	}
}

func successCard(s models.ScanSuccess) Card {
	return Card{
		Mode:     models.DisplayShowingSuccess,
		Tone:     TonePositive,
		Icon:     IconCheck,
		Title:    s.HolderName,
		Subtitle: s.HolderSurname,
		Image:    s.HolderImage,
		Lines: []Line{
			{Label: LabelFare, Value: "- " + FormatBRL(s.Fare), Debit: true},
			{Label: LabelBalanceBefore, Value: FormatBRL(s.BalanceBefore)},
			{Label: LabelBalanceAfter, Value: FormatBRL(s.BalanceAfter)},
		},
		Badge:  BadgeGranted,
		Footer: Footer,
	}
}

func failureCard(f models.ScanFailure) Card {
	card := Card{
		Mode:   models.DisplayShowingError,
		Tone:   ToneNegative,
		Badge:  BadgeDenied,
		Footer: Footer,
	}

	switch f.Kind {
	case models.ErrorKindUserNotFound:
		card.Icon = IconPerson
		card.Title = UserNotFoundTitle
		card.Subtitle = UserNotFoundMessage
	case models.ErrorKindInsufficientBalance:
		card.Icon = IconWallet
		card.Title = InsufficientBalanceTitle
		card.Subtitle = InsufficientBalanceMessage
	default:
		card.Icon = IconAlert
		card.Title = UnknownErrorTitle
		card.Subtitle = f.Message
		if card.Subtitle == "" {
			card.Subtitle = UnknownErrorMessage
		}
	}

	return card
}
