package domain

import "time"

// Snapshot is one fetched exchange-rate table. Rates are expressed as units
// of currency per one unit of BaseCurrency; the base itself maps to 1.
// A snapshot is never mutated, a refresh stores a replacement.
type Snapshot struct {
	BaseCurrency string             `json:"base_currency"`
	Rates        map[string]float64 `json:"rates"`
	FetchedAt    time.Time          `json:"fetched_at"`
	Source       string             `json:"source"`
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// SupportedCurrencies are the currencies quoted in this business's markets.
var SupportedCurrencies = map[string]Currency{
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$"},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€"},
	"THB": {Code: "THB", Name: "Thai Baht", Symbol: "฿"},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "CN¥"},
	"SGD": {Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
}

// FallbackRates is the static JPY-relative table used when every live
// provider is unavailable.
var FallbackRates = map[string]float64{
	"JPY": 1,
	"USD": 0.0067,
	"EUR": 0.0062,
	"THB": 0.22,
	"CNY": 0.048,
	"SGD": 0.0091,
}

const FallbackSource = "fallback (static rates)"

// SupportedCodes returns the supported currency codes in a stable order.
func SupportedCodes() []string {
	return []string{"JPY", "USD", "EUR", "THB", "CNY", "SGD"}
}

func IsSupported(code string) bool {
	_, ok := SupportedCurrencies[code]
	return ok
}
