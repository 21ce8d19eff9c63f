package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/payroll-engine/format"
)

func TestHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{8, "8h00min"},
		{8.5, "8h30min"},
		{0.75, "0h45min"},
		{0, "0h00min"},
		{26.25, "26h15min"},
		{-1.5, "-1h30min"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, format.Hours(decimal.NewFromFloat(tt.hours)))
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		value    float64
		currency format.Currency
		want     string
	}{
		{1234.56, format.BRL, "R$ 1.234,56"},
		{80, format.BRL, "R$ 80,00"},
		{1234567.8, format.USD, "$ 1.234.567,80"},
		{15000, format.PYG, "₲ 15.000"},
		{15000.6, format.PYG, "₲ 15.001"}, // no minor unit, rounds
		{-42.5, format.BRL, "-R$ 42,50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, format.Money(decimal.NewFromFloat(tt.value), tt.currency))
	}
}

func TestCurrencySymbolFallback(t *testing.T) {
	assert.Equal(t, "EUR", format.Currency("EUR").Symbol())
}
