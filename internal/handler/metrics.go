package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pizza_platform",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of successfully created orders.",
	})

	ordersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pizza_platform",
		Subsystem: "orders",
		Name:      "rejected_total",
		Help:      "Total number of order creation attempts rejected before commit.",
	}, []string{"reason"})

	orderCreateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pizza_platform",
		Subsystem: "orders",
		Name:      "create_duration_seconds",
		Help:      "Histogram of order creation durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
