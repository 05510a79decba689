package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page is the data of the full kiosk page.
type Page struct {
	BusID     string
	EventsURL string
	Card      Card
}

// HTML renders the card fragment that replaces the page's card on every
// state change.
func HTML(card Card) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "card", card); err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	return buf.String(), nil
}

// WritePage renders the full kiosk page to w.
func WritePage(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
