package handler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	transactionsCreated  prometheus.Counter
	transactionsReceived prometheus.Counter
	blocksReceived       prometheus.Counter
}

func NewStats() (*Stats, error) {
	p := &Stats{
		transactionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_api_created_txs",
			Help: "Nr of txs created through the wallet",
		}),
		transactionsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_api_received_txs",
			Help: "Nr of txs relayed by peers",
		}),
		blocksReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powledger_api_received_blocks",
			Help: "Nr of blocks relayed by peers",
		}),
	}

	err := registerStats(
		p.transactionsCreated,
		p.transactionsReceived,
		p.blocksReceived,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Stats) UnregisterStats() {
	unregisterStats(
		s.transactionsCreated,
		s.transactionsReceived,
		s.blocksReceived,
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
