package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proxiedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizza_platform",
		Subsystem: "gateway",
		Name:      "proxied_requests_total",
		Help:      "Total number of requests forwarded upstream, by route prefix and upstream status.",
	}, []string{"route", "status"})

	proxyErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizza_platform",
		Subsystem: "gateway",
		Name:      "proxy_errors_total",
		Help:      "Total number of forwarded requests that failed at the transport level.",
	}, []string{"route"})
)
