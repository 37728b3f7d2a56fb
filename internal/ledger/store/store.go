package store

import (
	"errors"

	"github.com/powledger/powledger/internal/ledger"
)

var ErrBlockNotFound = errors.New("block not found")

// LedgerStore is the ordered sequence of committed blocks. Implementations do not
// validate appended blocks and are not safe for concurrent use; the node
// serializes access.
type LedgerStore interface {
	Genesis() ledger.Block
	Last() ledger.Block
	Append(block ledger.Block)
	At(index uint64) (ledger.Block, error)
	Blocks() []ledger.Block
	Height() uint64
}
