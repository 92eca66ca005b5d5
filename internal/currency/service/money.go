package service

import (
	"fmt"
	"math"
	"strings"

	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
)

// Convert moves an amount between two currencies quoted in the same
// snapshot. A missing rate entry counts as 1, so an incomplete table
// degrades to a pass-through instead of zeroing the amount.
func Convert(amount float64, from, to string, rates map[string]float64) float64 {
	if from == to {
		return amount
	}

	fromRate, ok := rates[from]
	if !ok || fromRate == 0 {
		fromRate = 1
	}
	toRate, ok := rates[to]
	if !ok {
		toRate = 1
	}

	return amount / fromRate * toRate
}

// zeroDecimalCurrencies are displayed in whole units.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"CNY": true,
	"THB": true,
}

// Format renders an amount for display in the given currency. Unsupported
// codes fall back to "CODE 1,234.56".
func Format(amount float64, code string) string {
	currency, ok := currencydomain.SupportedCurrencies[code]
	if !ok {
		return fmt.Sprintf("%s %s", code, groupThousands(amount, 2))
	}
	if zeroDecimalCurrencies[code] {
		return currency.Symbol + groupThousands(math.Round(amount), 0)
	}
	return currency.Symbol + groupThousands(amount, 2)
}

// groupThousands formats the amount with comma-separated thousands and a
// fixed number of decimals.
func groupThousands(amount float64, decimals int) string {
	formatted := fmt.Sprintf("%.*f", decimals, amount)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	whole, fraction := formatted, ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		whole, fraction = formatted[:i], formatted[i:]
	}

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + fraction
}
