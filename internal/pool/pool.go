package pool

import (
	"github.com/powledger/powledger/internal/ledger"
)

// Pool holds pending transactions in insertion order. It is not safe for
// concurrent use; the node serializes access.
type Pool struct {
	txs []ledger.Transaction
}

func New() *Pool {
	return &Pool{txs: make([]ledger.Transaction, 0)}
}

func (p *Pool) Add(tx ledger.Transaction) {
	p.txs = append(p.txs, tx)
}

// Pending returns a copy of the pending transactions.
func (p *Pool) Pending() []ledger.Transaction {
	txs := make([]ledger.Transaction, len(p.txs))
	copy(txs, p.txs)
	return txs
}

func (p *Pool) Len() int {
	return len(p.txs)
}

// Remove drops one exactly equal pending entry for each of txs. Transactions
// that are not pending are ignored.
func (p *Pool) Remove(txs []ledger.Transaction) int {
	removed := 0
	for _, tx := range txs {
		for i, pending := range p.txs {
			if pending == tx {
				p.txs = append(p.txs[:i], p.txs[i+1:]...)
				removed++
				break
			}
		}
	}

	return removed
}

type pruneKey struct {
	sender    string
	receiver  string
	signature string
}

// Prune drops every pending entry whose sender, receiver and signature match one
// of the committed transactions. The amount is not part of the match.
func (p *Pool) Prune(committed []ledger.Transaction) int {
	keys := make(map[pruneKey]struct{}, len(committed))
	for _, tx := range committed {
		keys[pruneKey{sender: tx.Sender, receiver: tx.Receiver, signature: tx.Signature}] = struct{}{}
	}

	kept := make([]ledger.Transaction, 0, len(p.txs))
	for _, tx := range p.txs {
		if _, found := keys[pruneKey{sender: tx.Sender, receiver: tx.Receiver, signature: tx.Signature}]; found {
			continue
		}
		kept = append(kept, tx)
	}

	removed := len(p.txs) - len(kept)
	p.txs = kept
	return removed
}
