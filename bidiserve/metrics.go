package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are registered with a registry of their own, so that every server
// instance (and every test) starts from zero.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	codeUnits *prometheus.CounterVec
	limited   prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidishape_requests_total",
				Help: "Requests per operation and result",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bidishape_operation_seconds",
				Help:    "Time spent in an operation",
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16),
			},
			[]string{"operation"},
		),
		codeUnits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidishape_code_units_total",
				Help: "UTF-16 code units processed per operation",
			},
			[]string{"operation"},
		),
		limited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bidishape_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.duration, m.codeUnits, m.limited)
	return m
}
