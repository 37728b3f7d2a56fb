package ledger

import (
	"github.com/powledger/powledger/pkg/api"
)

func TransactionFromWire(tx api.Transaction) Transaction {
	return Transaction{
		Sender:    tx.Sender,
		Receiver:  tx.Receiver,
		Amount:    tx.Amount,
		Signature: tx.Signature,
	}
}

func (t Transaction) Wire() api.Transaction {
	return api.Transaction{
		Sender:    t.Sender,
		Receiver:  t.Receiver,
		Amount:    t.Amount,
		Signature: t.Signature,
	}
}

func BlockFromWire(b api.Block) Block {
	txs := make([]Transaction, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = TransactionFromWire(tx)
	}

	return Block{
		Index:        b.Index,
		PreviousHash: b.PreviousHash,
		Timestamp:    b.Timestamp,
		Transactions: txs,
		Proof:        b.Proof,
	}
}

func (b Block) Wire() api.Block {
	txs := make([]api.Transaction, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = tx.Wire()
	}

	return api.Block{
		Index:        b.Index,
		PreviousHash: b.PreviousHash,
		Timestamp:    b.Timestamp,
		Proof:        b.Proof,
		Transactions: txs,
	}
}
