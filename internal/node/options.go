package node

import (
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/powledger/powledger/internal/ledger"
)

type Option func(n *Node)

func WithLogger(logger *slog.Logger) Option {
	return func(n *Node) {
		n.logger = logger.With(slog.String("module", "node"))
	}
}

func WithDifficulty(difficulty int) Option {
	return func(n *Node) {
		n.pow = ledger.NewProofOfWork(difficulty)
	}
}

func WithMiningReward(reward float64) Option {
	return func(n *Node) {
		n.miningReward = reward
	}
}

func WithIdentity(identity string) Option {
	return func(n *Node) {
		n.identity = identity
	}
}

func WithPeers(peers ...string) Option {
	return func(n *Node) {
		for _, p := range peers {
			if p != "" {
				n.peers[p] = struct{}{}
			}
		}
	}
}

func WithBalanceLedger(b BalanceLedger) Option {
	return func(n *Node) {
		n.balances = b
	}
}

func WithStats(s *Stats) Option {
	return func(n *Node) {
		n.stats = s
	}
}

func WithNow(nowFunc func() time.Time) Option {
	return func(n *Node) {
		n.now = nowFunc
	}
}

func WithTracer(attr ...attribute.KeyValue) Option {
	return func(n *Node) {
		n.tracingEnabled = true
		if len(attr) > 0 {
			n.tracingAttributes = append(n.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			n.tracingAttributes = append(n.tracingAttributes, attribute.String("file", file))
		}
	}
}
