package ledger

import (
	"errors"
	"fmt"
)

type ErrorKind byte

const (
	KindUnknown ErrorKind = iota
	// KindValidation covers bad proofs, broken hash links, malformed input,
	// insufficient balance and signature failures.
	KindValidation
	// KindNotReady means the node has no identity yet.
	KindNotReady
	// KindPeerCommunication is isolated per peer and never fails an operation.
	KindPeerCommunication
	// KindSequence means a received block is not the expected next block.
	KindSequence
	// KindInterrupted means a mining search was cancelled before it committed.
	KindInterrupted
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotReady:
		return "not ready"
	case KindPeerCommunication:
		return "peer communication"
	case KindSequence:
		return "sequence"
	case KindInterrupted:
		return "interrupted"
	}

	return "unknown"
}

var (
	ErrInvalidProof         = errors.New("proof of work is invalid")
	ErrPreviousHashMismatch = errors.New("previous hash does not match hash of previous block")
	ErrMalformedInput       = errors.New("malformed input")
	ErrInsufficientBalance  = errors.New("insufficient sender balance")
	ErrInvalidSignature     = errors.New("signature verification failed")
	ErrNoIdentity           = errors.New("node has no identity, wallet not initialized")
	ErrBlockBehindTip       = errors.New("block index is not ahead of the chain tip")
	ErrBlockAheadOfTip      = errors.New("block index is beyond the next expected index")
	ErrPeerUnreachable      = errors.New("peer communication failed")
	ErrMiningInterrupted    = errors.New("mining interrupted")
)

type Error struct {
	Err  error
	Kind ErrorKind
}

func NewError(err error, kind ErrorKind) *Error {
	return &Error{
		Err:  err,
		Kind: kind,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's tree.
func KindOf(err error) ErrorKind {
	var ledgerErr *Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Kind
	}

	return KindUnknown
}
