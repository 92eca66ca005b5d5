package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shutoken-mobility/ryokin/internal/cache"
	"github.com/shutoken-mobility/ryokin/internal/clock"
	"github.com/shutoken-mobility/ryokin/internal/config"
	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
	"github.com/shutoken-mobility/ryokin/internal/currency/provider"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(clk *clock.FakeClock, providers ...provider.Provider) currencydomain.Service {
	return NewService(ServiceParam{
		Log:       zap.NewNop(),
		Clock:     clk,
		Cache:     cache.NewExchangeSnapshotCache(30*time.Minute, clk.Now),
		Config:    config.Config{Currency: config.CurrencyConfig{FetchTimeout: 2 * time.Second}},
		Providers: providers,
		Metrics:   NewMetrics(prometheus.NewRegistry()),
	})
}

func newRateServer(t *testing.T, hits *atomic.Int64, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newFailingServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetExchangeRates_PrimaryProviderAndCache(t *testing.T) {
	var hits atomic.Int64
	server := newRateServer(t, &hits,
		`{"success":true,"base":"JPY","date":"2026-02-10","rates":{"USD":0.0067,"EUR":0.0062,"XAU":0.00001}}`)

	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	svc := newTestService(clk, provider.NewExchangeRateHost(server.Client(), server.URL, clk.Now))

	snapshot := svc.GetExchangeRates(context.Background(), "JPY")
	assert.Equal(t, "JPY", snapshot.BaseCurrency)
	assert.Equal(t, "exchangerate.host", snapshot.Source)
	assert.Equal(t, 1.0, snapshot.Rates["JPY"])
	assert.InDelta(t, 0.0067, snapshot.Rates["USD"], 1e-9)
	// Unsupported codes are dropped.
	assert.NotContains(t, snapshot.Rates, "XAU")
	assert.Equal(t, int64(1), hits.Load())

	// Within the freshness window the cached snapshot is returned untouched.
	clk.Advance(29 * time.Minute)
	cached := svc.GetExchangeRates(context.Background(), "JPY")
	assert.Equal(t, snapshot, cached)
	assert.Equal(t, int64(1), hits.Load())
}

func TestGetExchangeRates_CacheExpiresAfterFreshnessWindow(t *testing.T) {
	var hits atomic.Int64
	server := newRateServer(t, &hits,
		`{"success":true,"base":"JPY","date":"2026-02-10","rates":{"USD":0.0067}}`)

	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	svc := newTestService(clk, provider.NewExchangeRateHost(server.Client(), server.URL, clk.Now))

	svc.GetExchangeRates(context.Background(), "JPY")
	clk.Advance(31 * time.Minute)
	svc.GetExchangeRates(context.Background(), "JPY")
	assert.Equal(t, int64(2), hits.Load())
}

func TestGetExchangeRates_FallsBackToSecondary(t *testing.T) {
	primary := newFailingServer(t)
	var hits atomic.Int64
	secondary := newRateServer(t, &hits,
		`{"base":"USD","date":"2026-02-10","rates":{"JPY":149.5,"EUR":0.93}}`)

	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	svc := newTestService(clk,
		provider.NewExchangeRateHost(primary.Client(), primary.URL, clk.Now),
		provider.NewExchangeRateAPI(secondary.Client(), secondary.URL, clk.Now),
	)

	snapshot := svc.GetExchangeRates(context.Background(), "USD")
	assert.Equal(t, "exchangerate-api.com", snapshot.Source)
	assert.Equal(t, 1.0, snapshot.Rates["USD"])
	assert.InDelta(t, 149.5, snapshot.Rates["JPY"], 1e-9)
	assert.Equal(t, int64(1), hits.Load())
}

func TestGetExchangeRates_StaticFallbackNeverFails(t *testing.T) {
	primary := newFailingServer(t)
	secondary := newFailingServer(t)

	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	svc := newTestService(clk,
		provider.NewExchangeRateHost(primary.Client(), primary.URL, clk.Now),
		provider.NewExchangeRateAPI(secondary.Client(), secondary.URL, clk.Now),
	)

	snapshot := svc.GetExchangeRates(context.Background(), "USD")
	assert.Equal(t, currencydomain.FallbackSource, snapshot.Source)
	assert.Equal(t, clk.Now(), snapshot.FetchedAt)

	// The JPY-relative table is re-based onto USD.
	assert.InDelta(t, 1.0, snapshot.Rates["USD"], 1e-9)
	assert.InDelta(t, 1/0.0067, snapshot.Rates["JPY"], 1e-6)
	assert.InDelta(t, 0.0062/0.0067, snapshot.Rates["EUR"], 1e-9)
}

func TestGetExchangeRates_FallbackIsNotCached(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"base":"JPY","date":"2026-02-10","rates":{"USD":0.0067}}`))
	}))
	t.Cleanup(server.Close)

	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	svc := newTestService(clk, provider.NewExchangeRateHost(server.Client(), server.URL, clk.Now))

	first := svc.GetExchangeRates(context.Background(), "JPY")
	assert.Equal(t, currencydomain.FallbackSource, first.Source)

	// The outage was not cached, so the recovered provider is used at once.
	second := svc.GetExchangeRates(context.Background(), "JPY")
	assert.Equal(t, "exchangerate.host", second.Source)
	assert.Equal(t, int64(2), hits.Load())
}

func TestGetExchangeRates_UnknownBaseGetsStaticTableAsIs(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	svc := newTestService(clk)

	snapshot := svc.GetExchangeRates(context.Background(), "KRW")
	assert.Equal(t, currencydomain.FallbackSource, snapshot.Source)
	assert.Equal(t, "KRW", snapshot.BaseCurrency)
	assert.Equal(t, currencydomain.FallbackRates, snapshot.Rates)
}

func TestGetExchangeRates_RejectsBadProviderPayloads(t *testing.T) {
	cases := map[string]string{
		"reported failure": `{"success":false,"base":"JPY","rates":{"USD":0.0067}}`,
		"empty rate table": `{"success":true,"base":"JPY","rates":{}}`,
		"not json":         `<html>rate limited</html>`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var hits atomic.Int64
			server := newRateServer(t, &hits, body)

			clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
			svc := newTestService(clk, provider.NewExchangeRateHost(server.Client(), server.URL, clk.Now))

			snapshot := svc.GetExchangeRates(context.Background(), "JPY")
			assert.Equal(t, currencydomain.FallbackSource, snapshot.Source)
		})
	}
}

func TestConvert(t *testing.T) {
	rates := map[string]float64{"JPY": 1, "USD": 0.0067, "EUR": 0.0062}

	// Same currency is an identity regardless of the table.
	assert.Equal(t, 1500.0, Convert(1500, "JPY", "JPY", nil))

	assert.InDelta(t, 67.0, Convert(10000, "JPY", "USD", rates), 1e-9)
	assert.InDelta(t, 10000.0, Convert(67, "USD", "JPY", rates), 1e-6)
	assert.InDelta(t, 0.0062/0.0067*100, Convert(100, "USD", "EUR", rates), 1e-9)

	// Missing entries count as 1.
	assert.InDelta(t, 0.0062*500, Convert(500, "KRW", "EUR", rates), 1e-9)
	assert.Equal(t, 500.0, Convert(500, "KRW", "MXN", rates), "both missing")
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{32000, "JPY", "¥32,000"},
		{1234567.89, "JPY", "¥1,234,568"},
		{1234.5, "USD", "$1,234.50"},
		{0.5, "USD", "$0.50"},
		{980.4, "EUR", "€980.40"},
		{1500, "THB", "฿1,500"},
		{2500.6, "CNY", "CN¥2,501"},
		{99.9, "SGD", "S$99.90"},
		{1234.56, "KRW", "KRW 1,234.56"},
		{-1234.5, "USD", "$-1,234.50"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.amount, tc.code), "%v %s", tc.amount, tc.code)
	}
}
