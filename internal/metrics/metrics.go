package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_queries_total",
			Help: "Read operations by operation name and result",
		},
		[]string{"operation", "result"}, // ok|error
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_query_duration_seconds",
			Help:    "Read operation latency by operation name",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		QueriesTotal,
		QueryDuration,
	)
}
