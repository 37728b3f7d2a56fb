package handler

import (
	"context"

	"github.com/powledger/powledger/internal/ledger"
)

type NodeAPI interface {
	CreateTransaction(ctx context.Context, receiver, sender, signature string, amount float64) (ledger.Transaction, error)
	AddTransaction(ctx context.Context, tx ledger.Transaction) error
	MineBlock(ctx context.Context) (ledger.Block, error)
	AddBlock(ctx context.Context, block ledger.Block) error
	Balance(identity string) (float64, error)
	Chain() []ledger.Block
	Height() uint64
	PendingTransactions() []ledger.Transaction
	AddPeer(address string) (string, error)
	Peers() []string
	SetIdentity(identity string)
	ValidateChain(ctx context.Context) error
	Health() error
}

type Wallet interface {
	HasKeys() bool
	EnsureKeys() (publicKey string, created bool, err error)
	PublicKey() string
	PrivateKey() string
	SignTransaction(receiver string, amount float64) (sender string, signature string, err error)
}
