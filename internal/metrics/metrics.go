package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	CashTransactions *prometheus.CounterVec
	USSDRequests     *prometheus.CounterVec
	NearbyQueries    prometheus.Counter
	ConfirmLatency   *prometheus.HistogramVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			CashTransactions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cash_transactions_total",
				Help:      "Total cash transactions by type and final status.",
			}, []string{"type", "status"}),
			USSDRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ussd_requests_total",
				Help:      "Total USSD gateway callbacks by flow and response kind.",
			}, []string{"flow", "result"}),
			NearbyQueries: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "agent_nearby_queries_total",
				Help:      "Total agent directory nearby queries.",
			}),
			ConfirmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "confirm_duration_seconds",
				Help:      "Latency distribution for transaction confirmations.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"action"}),
		}

		prometheus.MustRegister(
			metricsInstance.CashTransactions,
			metricsInstance.USSDRequests,
			metricsInstance.NearbyQueries,
			metricsInstance.ConfirmLatency,
		)
	})
	return metricsInstance
}
