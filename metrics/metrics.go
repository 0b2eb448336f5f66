// File: metrics/metrics.go
// Package metrics exposes ring and pool activity as Prometheus metrics.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package metrics

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/incrediblejr/ijcringbuffer/api"
	"github.com/incrediblejr/ijcringbuffer/pool"
)

// RingMetrics holds the Prometheus collectors for a single SafeRing
// instance under a logical name (e.g. "inbound", "outbound").
//
// pool.SafeRing.Stats returns lifetime totals, not deltas, so RingMetrics
// remembers the last sampled values and adds only what changed since the
// previous Sample call.
type RingMetrics struct {
	ProducedTotal   prometheus.Counter
	RefusedTotal    prometheus.Counter
	TailSkipsTotal  prometheus.Counter
	ConsumeableSize prometheus.Gauge
	Capacity        prometheus.Gauge

	lastProduced, lastRefused, lastTailSkips uint64
}

// NewRingMetrics registers and returns the collectors for a named ring.
// name becomes the "ring" label value distinguishing multiple rings
// scraped by the same process.
func NewRingMetrics(name string) *RingMetrics {
	labels := prometheus.Labels{"ring": name}

	m := &RingMetrics{
		ProducedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "ijcringbuffer_produced_total",
			Help:        "Total records successfully produced into the ring.",
			ConstLabels: labels,
		}),
		RefusedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "ijcringbuffer_refused_total",
			Help:        "Total Produce calls refused because the record did not fit.",
			ConstLabels: labels,
		}),
		TailSkipsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "ijcringbuffer_tail_skips_total",
			Help:        "Total times Produce skipped the tail and wrote at the front.",
			ConstLabels: labels,
		}),
		ConsumeableSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "ijcringbuffer_consumeable_bytes",
			Help:        "Current total readable byte count.",
			ConstLabels: labels,
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "ijcringbuffer_capacity_bytes",
			Help:        "Fixed ring capacity in bytes.",
			ConstLabels: labels,
		}),
	}

	prometheus.MustRegister(
		m.ProducedTotal,
		m.RefusedTotal,
		m.TailSkipsTotal,
		m.ConsumeableSize,
		m.Capacity,
	)

	return m
}

// Sample reads sr's lifetime counters and current occupancy and updates
// the Prometheus collectors accordingly. Callers poll this on an interval
// or after each Produce/Consume batch; it is not wired automatically since
// SafeRing has no notion of its own metrics.
func (m *RingMetrics) Sample(sr *pool.SafeRing) {
	stats := sr.Stats()
	m.ProducedTotal.Add(float64(stats.Produced - m.lastProduced))
	m.RefusedTotal.Add(float64(stats.Refused - m.lastRefused))
	m.TailSkipsTotal.Add(float64(stats.TailSkips - m.lastTailSkips))
	m.lastProduced, m.lastRefused, m.lastTailSkips = stats.Produced, stats.Refused, stats.TailSkips

	m.ConsumeableSize.Set(float64(sr.ConsumeableSize()))
	m.Capacity.Set(float64(sr.Size()))
}

var _ api.GracefulShutdown = (*Server)(nil)

// Server runs an HTTP server exposing /metrics for Prometheus scraping.
type Server struct {
	addr string
	srv  *http.Server
}

// NewServer creates a metrics server bound to addr. Start must be called
// to begin listening.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start launches the HTTP server in a background goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[metrics] server listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
}

// Shutdown gracefully shuts down the metrics server, satisfying
// api.GracefulShutdown.
func (s *Server) Shutdown() error {
	return s.srv.Shutdown(context.Background())
}
