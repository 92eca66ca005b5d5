package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
)

type exchangeRateAPI struct {
	client  *http.Client
	baseURL string
	now     func() time.Time
}

// NewExchangeRateAPI fetches rates from the exchangerate-api.com v4
// latest endpoint, used as the secondary source.
func NewExchangeRateAPI(client *http.Client, baseURL string, now func() time.Time) Provider {
	return &exchangeRateAPI{client: client, baseURL: baseURL, now: now}
}

func (p *exchangeRateAPI) Name() string { return "exchangerate-api.com" }

type exchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func (p *exchangeRateAPI) Fetch(ctx context.Context, baseCurrency string) (currencydomain.Snapshot, error) {
	endpoint := fmt.Sprintf("%s/%s", p.baseURL, url.PathEscape(baseCurrency))

	var out exchangeRateAPIResponse
	if err := getJSON(ctx, p.client, endpoint, &out); err != nil {
		return currencydomain.Snapshot{}, err
	}

	rates, err := filterSupported(baseCurrency, out.Rates)
	if err != nil {
		return currencydomain.Snapshot{}, fmt.Errorf("secondary response unusable: %w", err)
	}

	return currencydomain.Snapshot{
		BaseCurrency: baseCurrency,
		Rates:        rates,
		FetchedAt:    parseQuoteDate(out.Date, p.now),
		Source:       p.Name(),
	}, nil
}
