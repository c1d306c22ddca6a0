package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0", "USD", "$0.00"},
		{"19.999", "EUR", "€20.00"},
		{"1500", "JPY", "¥1,500"},
		{"-3.2", "GBP", "-£3.20"},
		{"10", "XYZ", "XYZ 10.00"},
	}
	for _, tt := range tests {
		t.Run(tt.code+tt.amount, func(t *testing.T) {
			got := domain.FormatPrice(domain.Money{
				Amount:       decimal.RequireFromString(tt.amount),
				CurrencyCode: tt.code,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	var m domain.Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"29.90","currencyCode":"CAD"}`), &m))
	assert.True(t, decimal.RequireFromString("29.9").Equal(m.Amount))
	assert.Equal(t, "CAD", m.CurrencyCode)
}

func TestNormalizeSearchQuery(t *testing.T) {
	assert.Equal(t, "red shirt", domain.NormalizeSearchQuery("  Red   SHIRT "))
	assert.Equal(t, "", domain.NormalizeSearchQuery(" \t"))
}
