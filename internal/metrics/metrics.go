package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wheel"

var (
	Options = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "options",
		Help:      "Number of options currently on the wheel.",
	})

	TotalWeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "total_weight",
		Help:      "Sum of all option weights.",
	})

	Spins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "spins_total",
		Help:      "Spins by outcome (started, completed, cancelled, rejected).",
	}, []string{"outcome"})

	Wins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wins_total",
		Help:      "Winning draws per option position.",
	}, []string{"index"})

	Sessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions",
		Help:      "Live visitor sessions.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and status code.",
	}, []string{"method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)
