package broadcaster

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type stats struct {
	sentCount   prometheus.Counter
	failedCount prometheus.Counter
	duration    prometheus.Histogram
}

func newBroadcasterStats() *stats {
	return &stats{
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_broadcast_sent_count",
			Help: "Number of payloads delivered to peers",
		}),
		failedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_broadcast_failed_count",
			Help: "Number of payloads that could not be delivered to peers",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "powledger_broadcast_request_duration_seconds",
			Help:    "Duration of single peer requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func registerStats(cs ...prometheus.Collector) error {
	for _, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			return errors.Join(ErrFailedToRegisterStats, err)
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
