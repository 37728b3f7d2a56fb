package ledger

const (
	GenesisProof        = 100
	GenesisPreviousHash = ""
)

// Genesis returns the fixed first block of every chain.
func Genesis() Block {
	return Block{
		Index:        0,
		PreviousHash: GenesisPreviousHash,
		Timestamp:    0,
		Transactions: []Transaction{},
		Proof:        GenesisProof,
	}
}
