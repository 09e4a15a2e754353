// Package metrics holds the gateway's Prometheus collectors. Per-route HTTP
// request metrics come from the echoprometheus middleware; the counters here
// track domain outcomes the middleware cannot see.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BalanceLookups counts completed balance lookups by result.
	BalanceLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balance_gateway",
		Name:      "balance_lookups_total",
		Help:      "Total number of balance lookups by result.",
	}, []string{"result"})

	// UpstreamErrors counts failed calls to the upstream execution node.
	UpstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "balance_gateway",
		Name:      "upstream_errors_total",
		Help:      "Total number of failed upstream RPC calls.",
	})
)

// Lookup result label values.
const (
	LookupOK             = "ok"
	LookupInvalidAddress = "invalid_address"
	LookupUpstreamError  = "upstream_error"
)
