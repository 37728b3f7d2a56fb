package balance

import (
	"github.com/powledger/powledger/internal/ledger"
)

type BlockReader interface {
	Blocks() []ledger.Block
}

type PendingReader interface {
	Pending() []ledger.Transaction
}

// Ledger derives balances by replaying the committed chain and the pending pool.
// Pending sends are debited, pending receives are not credited.
type Ledger struct {
	blocks  BlockReader
	pending PendingReader
}

func New(blocks BlockReader, pending PendingReader) *Ledger {
	return &Ledger{
		blocks:  blocks,
		pending: pending,
	}
}

func (l *Ledger) Balance(identity string) float64 {
	var received, sent float64

	for _, block := range l.blocks.Blocks() {
		for _, tx := range block.Transactions {
			if tx.Sender == identity {
				sent += tx.Amount
			}
			if tx.Receiver == identity {
				received += tx.Amount
			}
		}
	}

	for _, tx := range l.pending.Pending() {
		if tx.Sender == identity {
			sent += tx.Amount
		}
	}

	return received - sent
}

// Invalidate is a no-op, every call to Balance is a full replay.
func (l *Ledger) Invalidate() {}
