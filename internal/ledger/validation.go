package ledger

import (
	"errors"
	"fmt"
)

// ValidateBlock checks the hash link to previous (skipped for the genesis index)
// and the proof over all transactions but the trailing reward.
func ValidateBlock(pow *ProofOfWork, block Block, previous Block) error {
	if block.Index != 0 {
		if block.PreviousHash != CanonicalHash(previous) {
			return NewError(errors.Join(ErrPreviousHashMismatch, fmt.Errorf("block index: %d", block.Index)), KindValidation)
		}
	}

	if !pow.Valid(block.ChallengeTransactions(), block.PreviousHash, block.Proof) {
		return NewError(errors.Join(ErrInvalidProof, fmt.Errorf("block index: %d, proof: %d", block.Index, block.Proof)), KindValidation)
	}

	return nil
}

// ValidateChain validates every block after genesis against its predecessor and
// stops at the first failure.
func ValidateChain(pow *ProofOfWork, blocks []Block) error {
	for i := 1; i < len(blocks); i++ {
		if err := ValidateBlock(pow, blocks[i], blocks[i-1]); err != nil {
			return err
		}
	}

	return nil
}
