package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpl_refresh_total",
		Help: "Refreshes intentados.",
	})
	refreshFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpl_refresh_failed_total",
		Help: "Refreshes que terminaron en error.",
	})
	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fpl_refresh_duration_seconds",
		Help:    "Duración del refresh completo.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
	lastSuccessUnix = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fpl_last_success_timestamp_seconds",
		Help: "Unix time del último refresh exitoso.",
	})
	lastPlayerCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fpl_last_player_count",
		Help: "Jugadores en el último snapshot exitoso.",
	})
)
