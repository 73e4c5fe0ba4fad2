package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinhub_upstream_requests_total",
			Help: "The total number of forecast upstream requests",
		},
		[]string{"source", "outcome"},
	)
	WeatherFailovers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kinhub_weather_failover_total",
		Help: "The total number of source failures that moved the forecast chain to the next source",
	})
	ForecastCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kinhub_forecast_cache_hits_total",
		Help: "The total number of forecast fetches served from cache",
	})
	ForecastCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kinhub_forecast_cache_misses_total",
		Help: "The total number of forecast fetches that went to the source chain",
	})
	RegistryFilesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinhub_registry_files_parsed_total",
			Help: "The total number of household files parsed",
		},
		[]string{"format"},
	)
	RegistryParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kinhub_registry_parse_failures_total",
		Help: "The total number of household files skipped because they could not be parsed",
	})
)
