package tui

type errorOverlayModel struct {
	message string
	// relogin sends the rider back to the login screen on dismissal.
	relogin bool
}

func (m errorOverlayModel) View() string {
	content := "Erro\n\n" + m.message + "\n\nenter / esc fechar"
	return overlayBoxStyle.Render(content)
}
