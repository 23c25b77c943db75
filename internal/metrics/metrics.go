// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects and exposes Prometheus metrics for the
// authentication server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Results recorded for sign-in and registration attempts.
const (
	ResultSuccess      = "success"
	ResultRejected     = "rejected"
	ResultInvalidInput = "invalid_input"
	ResultConflict     = "conflict"
	ResultError        = "error"
	ResultRateLimited  = "rate_limited"
)

// Recorder is implemented by [Collector]; handlers depend on it so tests can
// pass [Nop].
type Recorder interface {
	RecordSignIn(result string)
	RecordRegistration(result string)
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(route string, duration time.Duration)
}

// Collector records authentication metrics into a Prometheus registry.
type Collector struct {
	signIns        *prometheus.CounterVec
	registrations  *prometheus.CounterVec
	httpStatus     *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credauth_sign_in_total",
			Help: "Credentials sign-in attempts by result.",
		}, []string{"result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credauth_registration_total",
			Help: "Registration attempts by result.",
		}, []string{"result"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credauth_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "credauth_request_latency_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		c.signIns,
		c.registrations,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

func (c *Collector) RecordSignIn(result string) {
	c.signIns.WithLabelValues(result).Inc()
}

func (c *Collector) RecordRegistration(result string) {
	c.registrations.WithLabelValues(result).Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency observes duration under the chi route pattern, not
// the raw path, to keep label cardinality bounded.
func (c *Collector) RecordRequestLatency(route string, duration time.Duration) {
	c.requestLatency.WithLabelValues(route).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nopRecorder struct{}

func (nopRecorder) RecordSignIn(string)                        {}
func (nopRecorder) RecordRegistration(string)                  {}
func (nopRecorder) RecordHTTPStatus(int)                       {}
func (nopRecorder) RecordRequestLatency(string, time.Duration) {}

// Nop returns a Recorder that discards everything.
func Nop() Recorder {
	return nopRecorder{}
}
