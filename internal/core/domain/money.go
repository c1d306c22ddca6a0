package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// A Money is a decimal amount in a particular currency.
//
// Amounts travel as decimal strings on the wire
// and are never compared as binary floats.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"AUD": "A$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// FormatPrice formats m as an en-US currency string, e.g. "$1,234.50".
//
// Unknown currency codes are printed as a prefix, e.g. "XYZ 10.00".
func FormatPrice(m Money) string {
	code := strings.ToUpper(strings.TrimSpace(m.CurrencyCode))

	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}

	p := message.NewPrinter(language.AmericanEnglish)
	rounded := m.Amount.Round(int32(scale))
	amount := p.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(scale)))

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + amount
	}
	return sign + code + " " + amount
}
