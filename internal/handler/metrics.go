package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	repliesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "kafka_consumer",
			Name:      "replies_processed_total",
			Help:      "Total number of successfully stored operator replies",
		},
	)

	repliesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "kafka_consumer",
			Name:      "replies_failed_total",
			Help:      "Total number of failed reply processing attempts",
		},
	)

	repliesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "kafka_consumer",
			Name:      "replies_dlq_total",
			Help:      "Total number of replies written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	replyProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "delivio",
			Subsystem: "kafka_consumer",
			Name:      "reply_processing_duration_seconds",
			Help:      "Histogram of reply processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	tariffSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "catalog",
			Name:      "searches_total",
			Help:      "Total number of tariff searches by result",
		},
		[]string{"result"},
	)

	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of created orders",
		},
	)

	ordersCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivio",
			Subsystem: "orders",
			Name:      "completed_total",
			Help:      "Total number of orders moved to history",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		repliesProcessed,
		repliesFailed,
		repliesDLQ,
		commitErrors,
		replyProcessingDuration,

		tariffSearches,
		ordersCreated,
		ordersCompleted,
	)
}
