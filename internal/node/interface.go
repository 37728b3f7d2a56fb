package node

import (
	"github.com/powledger/powledger/internal/ledger"
)

// Signer verifies transaction signatures against the sender identity.
type Signer interface {
	Verify(tx ledger.Transaction) bool
}

// Broadcaster relays to peers without blocking the caller. Delivery failures
// must not be reported back.
type Broadcaster interface {
	SendTransaction(peers []string, tx ledger.Transaction)
	SendBlock(peers []string, block ledger.Block)
}

// BalanceLedger computes balances from the chain and pool. Invalidate is called
// after every mutation.
type BalanceLedger interface {
	Balance(identity string) float64
	Invalidate()
}
