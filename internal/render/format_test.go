package render

import (
	"testing"

	"github.com/MKhiriev/go-fare-card/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{3.5, "R$ 3,50"},
		{20, "R$ 20,00"},
		{1234.5, "R$ 1.234,50"},
		{-3.5, "-R$ 3,50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.in))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "05/03/2026 14:07:09", FormatTimestamp("2026-03-05T14:07:09-0300"))
	assert.Equal(t, "not a date", FormatTimestamp("not a date"))
}

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "Cartão de Crédito", PaymentMethodLabel(models.PaymentCreditCard))
	assert.Equal(t, "Pix", PaymentMethodLabel(models.PaymentPix))
	assert.Equal(t, "Pix", PaymentMethodLabel("BOLETO"))
}
