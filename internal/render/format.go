package render

import (
	"math"
	"time"

	"github.com/MKhiriev/go-fare-card/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisplayTimeLayout is how history timestamps are shown to riders.
const DisplayTimeLayout = "02/01/2006 15:04:05"

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats v as Brazilian reais, e.g. "R$ 1.234,50".
func FormatBRL(v float64) string {
	if v < 0 {
		return "-R$ " + brPrinter.Sprintf("%.2f", math.Abs(v))
	}
	return "R$ " + brPrinter.Sprintf("%.2f", v)
}

// FormatTimestamp converts an API timestamp to DisplayTimeLayout in its own
// offset. Unparseable input is returned unchanged.
func FormatTimestamp(raw string) string {
	t, err := time.Parse(models.APITimeLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(DisplayTimeLayout)
}

// PaymentMethodLabel names a top-up payment method.
func PaymentMethodLabel(m models.PaymentMethod) string {
	if m == models.PaymentCreditCard {
		return "Cartão de Crédito"
	}
	return "Pix"
}
