// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "socialnet",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "socialnet",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "socialnet",
		Name:      "likes_toggled_total",
		Help:      "Committed like toggles by resulting action.",
	}, []string{"action"})

	FriendActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "socialnet",
		Name:      "friend_actions_total",
		Help:      "Committed friend edge mutations by action.",
	}, []string{"action"})
)
