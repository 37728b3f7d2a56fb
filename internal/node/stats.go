package node

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	blocksMined          prometheus.Counter
	blocksAccepted       prometheus.Counter
	blocksRejected       prometheus.Counter
	transactionsAdmitted prometheus.Counter
	transactionsRejected prometheus.Counter
	chainHeight          prometheus.Gauge
	pendingTransactions  prometheus.Gauge
	miningDuration       prometheus.Histogram
}

func NewStats() (*Stats, error) {
	s := &Stats{
		blocksMined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_blocks_mined_count",
			Help: "Number of blocks mined by this node",
		}),
		blocksAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_blocks_accepted_count",
			Help: "Number of peer blocks appended to the chain",
		}),
		blocksRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_blocks_rejected_count",
			Help: "Number of peer blocks rejected",
		}),
		transactionsAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_transactions_admitted_count",
			Help: "Number of transactions admitted to the pool",
		}),
		transactionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_transactions_rejected_count",
			Help: "Number of transactions rejected at admission",
		}),
		chainHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "powledger_chain_height",
			Help: "Index of the chain tip",
		}),
		pendingTransactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "powledger_pending_transactions",
			Help: "Number of transactions waiting in the pool",
		}),
		miningDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "powledger_mining_duration_seconds",
			Help:    "Duration of proof of work searches that produced a block",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	err := registerStats(
		s.blocksMined,
		s.blocksAccepted,
		s.blocksRejected,
		s.transactionsAdmitted,
		s.transactionsRejected,
		s.chainHeight,
		s.pendingTransactions,
		s.miningDuration,
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Stats) UnregisterStats() {
	unregisterStats(
		s.blocksMined,
		s.blocksAccepted,
		s.blocksRejected,
		s.transactionsAdmitted,
		s.transactionsRejected,
		s.chainHeight,
		s.pendingTransactions,
		s.miningDuration,
	)
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
