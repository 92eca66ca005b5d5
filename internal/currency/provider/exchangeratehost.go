package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
)

type exchangeRateHost struct {
	client  *http.Client
	baseURL string
	now     func() time.Time
}

// NewExchangeRateHost fetches rates from the exchangerate.host latest
// endpoint.
func NewExchangeRateHost(client *http.Client, baseURL string, now func() time.Time) Provider {
	return &exchangeRateHost{client: client, baseURL: baseURL, now: now}
}

func (p *exchangeRateHost) Name() string { return "exchangerate.host" }

type exchangeRateHostResponse struct {
	Success *bool              `json:"success"`
	Base    string             `json:"base"`
	Date    string             `json:"date"`
	Rates   map[string]float64 `json:"rates"`
}

func (p *exchangeRateHost) Fetch(ctx context.Context, baseCurrency string) (currencydomain.Snapshot, error) {
	endpoint := fmt.Sprintf("%s?base=%s&symbols=%s",
		p.baseURL,
		url.QueryEscape(baseCurrency),
		strings.Join(currencydomain.SupportedCodes(), ","),
	)

	var out exchangeRateHostResponse
	if err := getJSON(ctx, p.client, endpoint, &out); err != nil {
		return currencydomain.Snapshot{}, err
	}
	if out.Success != nil && !*out.Success {
		return currencydomain.Snapshot{}, fmt.Errorf("provider reported failure")
	}

	rates, err := filterSupported(baseCurrency, out.Rates)
	if err != nil {
		return currencydomain.Snapshot{}, err
	}

	return currencydomain.Snapshot{
		BaseCurrency: baseCurrency,
		Rates:        rates,
		FetchedAt:    parseQuoteDate(out.Date, p.now),
		Source:       p.Name(),
	}, nil
}

// parseQuoteDate reads the provider's quote date, falling back to the
// current time when the field is absent or malformed.
func parseQuoteDate(raw string, now func() time.Time) time.Time {
	if at, err := time.Parse("2006-01-02", raw); err == nil {
		return at
	}
	return now()
}
