package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "audiolux_client",
			Name:      "requests_total",
			Help:      "Requests issued by the client, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "audiolux_client",
			Name:      "request_failures_total",
			Help:      "Requests that ended in a RequestError, by operation.",
		},
		[]string{"operation"},
	)
)

func observe(op string, err error) {
	requestsTotal.WithLabelValues(op).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(op).Inc()
	}
}
