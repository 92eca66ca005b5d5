package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks the health of the exchange-rate chain. Fallback serves
// are the signal to alert on: quotes are silently degrading.
type Metrics struct {
	cacheHits       prometheus.Counter
	providerFetches *prometheus.CounterVec
	providerErrors  *prometheus.CounterVec
	fallbackServes  prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "currency_snapshot_cache_hit_total",
		Help: "Exchange-rate requests served from the snapshot cache.",
	})
	providerFetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "currency_provider_fetch_total",
		Help: "Successful exchange-rate fetches by provider.",
	}, []string{"provider"})
	providerErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "currency_provider_error_total",
		Help: "Failed exchange-rate fetches by provider.",
	}, []string{"provider"})
	fallbackServes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "currency_fallback_serve_total",
		Help: "Requests answered with the static fallback table.",
	})

	registerer.MustRegister(cacheHits, providerFetches, providerErrors, fallbackServes)

	return &Metrics{
		cacheHits:       cacheHits,
		providerFetches: providerFetches,
		providerErrors:  providerErrors,
		fallbackServes:  fallbackServes,
	}
}
