package miner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/powledger/powledger/internal/ledger"
)

const DefaultInterval = 30 * time.Second

type BlockMiner interface {
	MineBlock(ctx context.Context) (ledger.Block, error)
	PendingCount() int
}

// Miner mines a block on every tick while the pool holds transactions.
type Miner struct {
	logger          *slog.Logger
	node            BlockMiner
	interval        time.Duration
	mineEmptyBlocks bool

	workersWg sync.WaitGroup
	ctx       context.Context
	cancelAll func()
}

type Option func(m *Miner)

func WithInterval(d time.Duration) Option {
	return func(m *Miner) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithMineEmptyBlocks makes the miner produce reward-only blocks when the pool is empty.
func WithMineEmptyBlocks(enabled bool) Option {
	return func(m *Miner) {
		m.mineEmptyBlocks = enabled
	}
}

func New(node BlockMiner, logger *slog.Logger, opts ...Option) *Miner {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Miner{
		logger:   logger.With(slog.String("module", "miner")),
		node:     node,
		interval: DefaultInterval,

		ctx:       ctx,
		cancelAll: cancel,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Miner) Start() {
	m.logger.Info("Starting", slog.String("interval", m.interval.String()), slog.Bool("mine_empty_blocks", m.mineEmptyBlocks))

	m.workersWg.Add(1)

	go func() {
		defer m.workersWg.Done()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.mine()
				ticker.Reset(m.interval)

			case <-m.ctx.Done():
				return
			}
		}
	}()
}

func (m *Miner) mine() {
	if !m.mineEmptyBlocks && m.node.PendingCount() == 0 {
		return
	}

	block, err := m.node.MineBlock(m.ctx)
	if err != nil {
		switch ledger.KindOf(err) {
		case ledger.KindNotReady:
			m.logger.Debug("Node not ready to mine", slog.String("err", err.Error()))
			return
		case ledger.KindInterrupted:
			m.logger.Info("Mining round interrupted", slog.String("err", err.Error()))
			return
		}

		m.logger.Error("Failed to mine block", slog.String("err", err.Error()))
		return
	}

	m.logger.Info("Mined block", slog.Uint64("index", block.Index), slog.Int("transactions", len(block.Transactions)))
}

func (m *Miner) GracefulStop() {
	m.logger.Info("Shutting down")

	m.cancelAll()
	m.workersWg.Wait()

	m.logger.Info("Shutdown complete")
}
