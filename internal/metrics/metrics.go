// Package metrics exposes Prometheus collectors for the chat hub and its
// WebSocket transport. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pingo"

// Metrics groups the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	connections   prometheus.Gauge
	inbound       *prometheus.CounterVec
	routed        *prometheus.CounterVec
	peerDropped   prometheus.Counter
	eventsDropped prometheus.Counter
	discarded     *prometheus.CounterVec
	intents       *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections",
			Help:      "Live WebSocket connections.",
		}),
		inbound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_events_total",
			Help:      "Inbound events accepted by the hub, by type.",
		}, []string{"type"}),
		routed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_routed_total",
			Help:      "Messages routed, by destination path.",
		}, []string{"path"}),
		peerDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "peer_messages_dropped_total",
			Help:      "Peer messages addressed to a room with no members.",
		}),
		eventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbound_events_dropped_total",
			Help:      "Outbound events dropped because a client buffer was full.",
		}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inbound_events_discarded_total",
			Help:      "Inbound frames discarded before reaching the hub, by reason.",
		}, []string{"reason"}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intents_classified_total",
			Help:      "Assistant messages by classified intent.",
		}, []string{"intent"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.connections,
		m.inbound,
		m.routed,
		m.peerDropped,
		m.eventsDropped,
		m.discarded,
		m.intents,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connections.Dec()
}

func (m *Metrics) InboundEvent(kind string) {
	if m == nil {
		return
	}
	m.inbound.WithLabelValues(kind).Inc()
}

// Routed counts a message by path ("peer" or "assistant").
func (m *Metrics) Routed(path string) {
	if m == nil {
		return
	}
	m.routed.WithLabelValues(path).Inc()
}

func (m *Metrics) PeerDropped() {
	if m == nil {
		return
	}
	m.peerDropped.Inc()
}

func (m *Metrics) EventDropped() {
	if m == nil {
		return
	}
	m.eventsDropped.Inc()
}

// Discarded counts an inbound frame rejected by the transport.
func (m *Metrics) Discarded(reason string) {
	if m == nil {
		return
	}
	m.discarded.WithLabelValues(reason).Inc()
}

func (m *Metrics) IntentClassified(label string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(label).Inc()
}
