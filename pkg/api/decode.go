package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingField     = errors.New("missing required field")
	ErrNegativeAmount   = errors.New("amount must not be negative")
)

type rawTransaction struct {
	Sender    *string  `json:"sender"`
	Receiver  *string  `json:"receiver"`
	Amount    *float64 `json:"amount"`
	Signature *string  `json:"signature"`
}

type rawBlock struct {
	Index        *uint64           `json:"index"`
	PreviousHash *string           `json:"previous_hash"`
	Timestamp    *float64          `json:"timestamp"`
	Proof        *uint64           `json:"proof"`
	Transactions *[]rawTransaction `json:"transactions"`
}

// DecodeTransaction parses a relayed transaction. Unknown fields, missing fields,
// mistyped values and trailing data are all rejected.
func DecodeTransaction(r io.Reader) (Transaction, error) {
	var raw rawTransaction
	if err := decodeStrict(r, &raw); err != nil {
		return Transaction{}, err
	}

	return raw.toTransaction("")
}

// DecodeBlock parses a relayed block with the same strictness as DecodeTransaction.
func DecodeBlock(r io.Reader) (Block, error) {
	var raw rawBlock
	if err := decodeStrict(r, &raw); err != nil {
		return Block{}, err
	}

	missing := make([]string, 0)
	if raw.Index == nil {
		missing = append(missing, "index")
	}
	if raw.PreviousHash == nil {
		missing = append(missing, "previous_hash")
	}
	if raw.Timestamp == nil {
		missing = append(missing, "timestamp")
	}
	if raw.Proof == nil {
		missing = append(missing, "proof")
	}
	if raw.Transactions == nil {
		missing = append(missing, "transactions")
	}
	if len(missing) > 0 {
		return Block{}, errors.Join(ErrMalformedPayload, ErrMissingField, fmt.Errorf("fields: %v", missing))
	}

	if math.IsNaN(*raw.Timestamp) || *raw.Timestamp < 0 {
		return Block{}, errors.Join(ErrMalformedPayload, fmt.Errorf("invalid timestamp: %v", *raw.Timestamp))
	}

	block := Block{
		Index:        *raw.Index,
		PreviousHash: *raw.PreviousHash,
		Timestamp:    *raw.Timestamp,
		Proof:        *raw.Proof,
		Transactions: make([]Transaction, 0, len(*raw.Transactions)),
	}

	for i, rawTx := range *raw.Transactions {
		tx, err := rawTx.toTransaction(fmt.Sprintf("transactions[%d].", i))
		if err != nil {
			return Block{}, err
		}
		block.Transactions = append(block.Transactions, tx)
	}

	return block, nil
}

type rawCreateTransactionRequest struct {
	Receiver *string  `json:"receiver"`
	Amount   *float64 `json:"amount"`
}

type rawAddNodeRequest struct {
	Node *string `json:"node"`
}

func DecodeCreateTransactionRequest(r io.Reader) (CreateTransactionRequest, error) {
	var raw rawCreateTransactionRequest
	if err := decodeStrict(r, &raw); err != nil {
		return CreateTransactionRequest{}, err
	}

	if raw.Receiver == nil || raw.Amount == nil {
		return CreateTransactionRequest{}, errors.Join(ErrMalformedPayload, ErrMissingField, errors.New("fields: receiver, amount"))
	}

	if *raw.Amount < 0 || math.IsNaN(*raw.Amount) {
		return CreateTransactionRequest{}, errors.Join(ErrMalformedPayload, ErrNegativeAmount)
	}

	return CreateTransactionRequest{Receiver: *raw.Receiver, Amount: *raw.Amount}, nil
}

func DecodeAddNodeRequest(r io.Reader) (AddNodeRequest, error) {
	var raw rawAddNodeRequest
	if err := decodeStrict(r, &raw); err != nil {
		return AddNodeRequest{}, err
	}

	if raw.Node == nil {
		return AddNodeRequest{}, errors.Join(ErrMalformedPayload, ErrMissingField, errors.New("fields: node"))
	}

	return AddNodeRequest{Node: *raw.Node}, nil
}

func (raw rawTransaction) toTransaction(prefix string) (Transaction, error) {
	missing := make([]string, 0)
	if raw.Sender == nil {
		missing = append(missing, prefix+"sender")
	}
	if raw.Receiver == nil {
		missing = append(missing, prefix+"receiver")
	}
	if raw.Amount == nil {
		missing = append(missing, prefix+"amount")
	}
	if raw.Signature == nil {
		missing = append(missing, prefix+"signature")
	}
	if len(missing) > 0 {
		return Transaction{}, errors.Join(ErrMalformedPayload, ErrMissingField, fmt.Errorf("fields: %v", missing))
	}

	if *raw.Amount < 0 || math.IsNaN(*raw.Amount) {
		return Transaction{}, errors.Join(ErrMalformedPayload, ErrNegativeAmount, fmt.Errorf("field: %samount", prefix))
	}

	return Transaction{
		Sender:    *raw.Sender,
		Receiver:  *raw.Receiver,
		Amount:    *raw.Amount,
		Signature: *raw.Signature,
	}, nil
}

func decodeStrict(r io.Reader, v any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(ErrMalformedPayload, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.Join(ErrMalformedPayload, errors.New("empty body"))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err = dec.Decode(v); err != nil {
		return errors.Join(ErrMalformedPayload, err)
	}

	if dec.More() {
		return errors.Join(ErrMalformedPayload, errors.New("unexpected trailing data"))
	}

	return nil
}
