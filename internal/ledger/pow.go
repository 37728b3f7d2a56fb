package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"strconv"
)

const (
	DefaultDifficulty = 2
	MaxDifficulty     = sha256.Size * 2

	// the search polls for cancellation once per batch of attempts
	searchBatchSize = 1024
)

type challengeTransaction struct {
	Sender   string      `json:"sender"`
	Receiver string      `json:"receiver"`
	Amount   json.Number `json:"amount"`
}

// ProofOfWork checks and searches proofs at a fixed difficulty, the number of
// leading '0' hex characters the challenge digest must have.
type ProofOfWork struct {
	difficulty int
}

func NewProofOfWork(difficulty int) *ProofOfWork {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > MaxDifficulty {
		difficulty = MaxDifficulty
	}

	return &ProofOfWork{difficulty: difficulty}
}

func (p *ProofOfWork) Difficulty() int {
	return p.difficulty
}

// Valid reports whether proof solves the challenge built from txs and previousHash.
func (p *ProofOfWork) Valid(txs []Transaction, previousHash string, proof uint64) bool {
	return p.meetsDifficulty(challenge(challengePrefix(txs, previousHash), proof))
}

// Search increments a proof from zero until it solves the challenge. The only
// exit other than success is cancellation of ctx.
func (p *ProofOfWork) Search(ctx context.Context, txs []Transaction, previousHash string) (uint64, error) {
	prefix := challengePrefix(txs, previousHash)

	for proof := uint64(0); ; proof++ {
		if proof%searchBatchSize == 0 {
			if err := ctx.Err(); err != nil {
				return 0, NewError(errors.Join(ErrMiningInterrupted, err), KindInterrupted)
			}
		}

		if p.meetsDifficulty(challenge(prefix, proof)) {
			return proof, nil
		}
	}
}

func (p *ProofOfWork) meetsDifficulty(digest [sha256.Size]byte) bool {
	for i := 0; i < p.difficulty; i++ {
		b := digest[i/2]
		if i%2 == 0 {
			b >>= 4
		}
		if b&0x0f != 0 {
			return false
		}
	}

	return true
}

func challengePrefix(txs []Transaction, previousHash string) []byte {
	ordered := make([]challengeTransaction, len(txs))
	for i, tx := range txs {
		ordered[i] = challengeTransaction{
			Sender:   tx.Sender,
			Receiver: tx.Receiver,
			Amount:   json.Number(FormatAmount(tx.Amount)),
		}
	}

	b, _ := json.Marshal(ordered)

	prefix := make([]byte, 0, len(b)+len(previousHash)+20)
	prefix = append(prefix, b...)
	prefix = append(prefix, previousHash...)
	return prefix
}

func challenge(prefix []byte, proof uint64) [sha256.Size]byte {
	buf := make([]byte, 0, len(prefix)+20)
	buf = append(buf, prefix...)
	buf = strconv.AppendUint(buf, proof, 10)
	return sha256.Sum256(buf)
}
