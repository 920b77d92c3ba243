// Package metrics exposes Prometheus instruments for the API, the access
// gate and the subscription sweeper.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "darna"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	GateDecisionsTotal *prometheus.CounterVec

	SweepRunsTotal     *prometheus.CounterVec
	SweepExpiredTotal  prometheus.Counter
	SweepLastSuccessTS prometheus.Gauge
}

// New creates and registers every metric on a private registry, together
// with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GateDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gate_decisions_total",
				Help:      "Access gate outcomes by reason code",
			},
			[]string{"code"},
		),
		SweepRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweeper_runs_total",
				Help:      "Subscription sweeper runs by outcome",
			},
			[]string{"status"},
		),
		SweepExpiredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweeper_expired_subscriptions_total",
				Help:      "Subscriptions expired by the sweeper",
			},
		),
		SweepLastSuccessTS: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sweeper_last_success_timestamp_seconds",
				Help:      "Unix time of the last successful sweeper run",
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GateDecisionsTotal,
		m.SweepRunsTotal,
		m.SweepExpiredTotal,
		m.SweepLastSuccessTS,
	)

	return m
}

// RecordDecision counts one gate outcome.
func (m *Metrics) RecordDecision(code string) {
	m.GateDecisionsTotal.WithLabelValues(code).Inc()
}

// RecordSweep counts one sweeper run.
func (m *Metrics) RecordSweep(expired int64, err error) {
	if err != nil {
		m.SweepRunsTotal.WithLabelValues("error").Inc()
		return
	}
	m.SweepRunsTotal.WithLabelValues("success").Inc()
	m.SweepExpiredTotal.Add(float64(expired))
	m.SweepLastSuccessTS.SetToCurrentTime()
}

// RegisterGauge exposes a value computed at scrape time, such as the number
// of live websocket connections.
func (m *Metrics) RegisterGauge(name, help string, fn func() float64) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help},
		fn,
	))
}

// ObserveHTTP records one served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
