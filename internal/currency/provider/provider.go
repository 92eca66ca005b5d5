package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
)

// Provider is one upstream exchange-rate source. Fetch returns a snapshot
// whose rate table is filtered to the supported currencies with the base
// pinned to 1.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, baseCurrency string) (currencydomain.Snapshot, error)
}

const maxResponseBytes = 1 << 20

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// filterSupported drops unsupported and non-positive rates and pins the
// base currency to 1. An empty result means the response was unusable.
func filterSupported(baseCurrency string, raw map[string]float64) (map[string]float64, error) {
	rates := make(map[string]float64, len(currencydomain.SupportedCurrencies))
	for code, rate := range raw {
		if currencydomain.IsSupported(code) && rate > 0 {
			rates[code] = rate
		}
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no usable rates in response")
	}
	rates[baseCurrency] = 1
	return rates, nil
}
