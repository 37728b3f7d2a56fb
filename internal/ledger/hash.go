package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Field order of the hashable structs is alphabetical, which keeps the encoding
// identical to a sorted-key JSON serialization. Amounts use FormatAmount so they
// never switch to exponent notation.
type hashableTransaction struct {
	Amount   json.Number `json:"amount"`
	Receiver string      `json:"receiver"`
	Sender   string      `json:"sender"`
}

type hashableBlock struct {
	Index        uint64                `json:"index"`
	PreviousHash string                `json:"previous_hash"`
	Proof        uint64                `json:"proof"`
	Timestamp    float64               `json:"timestamp"`
	Transactions []hashableTransaction `json:"transactions"`
}

// CanonicalHash returns the lowercase hex SHA-256 of the block's canonical
// serialization. Signatures are not part of the hash.
func CanonicalHash(block Block) string {
	hb := hashableBlock{
		Index:        block.Index,
		PreviousHash: block.PreviousHash,
		Proof:        block.Proof,
		Timestamp:    block.Timestamp,
		Transactions: make([]hashableTransaction, len(block.Transactions)),
	}

	for i, tx := range block.Transactions {
		hb.Transactions[i] = hashableTransaction{
			Amount:   json.Number(FormatAmount(tx.Amount)),
			Receiver: tx.Receiver,
			Sender:   tx.Sender,
		}
	}

	// marshalling plain strings and finite floats cannot fail
	b, _ := json.Marshal(hb)

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
