package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	transportGrpc = "grpc"
	transportRest = "rest"
)

var (
	// requestsTotal counts handled requests.
	// Labels: transport (grpc, rest), method (full gRPC method or route), code
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glossary",
		Name:      "requests_total",
		Help:      "Total requests handled by the glossary service",
	}, []string{"transport", "method", "code"})

	// requestDuration measures request latency.
	// Labels: transport, method
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glossary",
		Name:      "request_duration_seconds",
		Help:      "Request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"transport", "method"})

	// inflightGrpc tracks gRPC requests holding a worker slot.
	inflightGrpc = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "glossary",
		Subsystem: "grpc",
		Name:      "inflight_requests",
		Help:      "gRPC requests currently being handled",
	})
)
