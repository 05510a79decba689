package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Entrar", "Criar conta"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Bem-vindo! Escolha uma opção:\n\n")
	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(cursorStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	return renderPage("MYBUS", strings.TrimRight(b.String(), "\n"), "enter: selecionar │ v: sobre │ q: sair")
}
