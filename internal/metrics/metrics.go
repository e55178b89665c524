package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cyphera_circles"

// Registry holds every collector exported on /metrics.
var Registry = prometheus.NewRegistry()

var (
	CircleSyncTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "circle_sync_total",
		Help:      "Circle sync attempts by result (synced, absent, skipped, error).",
	}, []string{"result"})

	CircleSyncUnknownStatusTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "circle_sync_unknown_status_total",
		Help:      "On-chain status codes that matched no lifecycle rule.",
	})

	CircleTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "circle_transitions_total",
		Help:      "Lifecycle transitions applied to cached circles.",
	}, []string{"to"})

	NonceAllocationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nonce_allocations_total",
		Help:      "Nonces handed out by the sequencer.",
	})

	NonceResetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nonce_resets_total",
		Help:      "Explicit nonce cursor resets.",
	})

	NonceGapsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nonce_gaps_total",
		Help:      "Allocated nonces whose transaction failed to broadcast.",
	})

	DisbursementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disbursements_total",
		Help:      "Faucet claims by result.",
	}, []string{"result"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Sync result labels
const (
	SyncResultSynced  = "synced"
	SyncResultAbsent  = "absent"
	SyncResultSkipped = "skipped"
	SyncResultError   = "error"
)

// Disbursement result labels
const (
	DisbursementSuccess     = "success"
	DisbursementFailed      = "failed"
	DisbursementRateLimited = "rate_limited"
	DisbursementUnavailable = "unavailable"
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		CircleSyncTotal,
		CircleSyncUnknownStatusTotal,
		CircleTransitionsTotal,
		NonceAllocationsTotal,
		NonceResetsTotal,
		NonceGapsTotal,
		DisbursementsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
