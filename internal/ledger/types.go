package ledger

import (
	"strconv"
)

// MiningRewardSender is the sentinel sender of reward transactions. It carries no
// key, never signs and never has a spendable balance.
const MiningRewardSender = "Mining reward"

// Transaction is an immutable value transfer between two identities. An identity
// is the hex encoding of the sender's public key.
type Transaction struct {
	Sender    string
	Receiver  string
	Amount    float64
	Signature string
}

// IsReward reports whether the transaction was minted by a miner.
func (t Transaction) IsReward() bool {
	return t.Sender == MiningRewardSender
}

// SigningPayload is the message covered by the transaction signature.
func (t Transaction) SigningPayload() []byte {
	return SigningPayload(t.Sender, t.Receiver, t.Amount)
}

// SigningPayload concatenates sender, receiver and the formatted amount.
func SigningPayload(sender, receiver string, amount float64) []byte {
	return []byte(sender + receiver + FormatAmount(amount))
}

// FormatAmount renders an amount in its shortest decimal form, without exponent
// and without trailing zeros.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

type Block struct {
	Index        uint64
	PreviousHash string
	Timestamp    float64
	Transactions []Transaction
	Proof        uint64
}

// Clone returns a copy that shares no memory with b.
func (b Block) Clone() Block {
	c := b
	c.Transactions = make([]Transaction, len(b.Transactions))
	copy(c.Transactions, b.Transactions)
	return c
}

// ChallengeTransactions returns the transactions covered by the proof of work:
// all but the last one, which is the miner's reward.
func (b Block) ChallengeTransactions() []Transaction {
	if len(b.Transactions) == 0 {
		return []Transaction{}
	}

	return b.Transactions[:len(b.Transactions)-1]
}
