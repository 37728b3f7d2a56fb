package wallet

import (
	"errors"
	"sync"
)

var ErrNoKeys = errors.New("wallet has no keys")

type KeySigner interface {
	GenerateKeypair() (privateKey string, publicKey string, err error)
	Sign(privateKey, sender, receiver string, amount float64) (string, error)
}

// Wallet holds the node operator's keypair. The public key is the node identity.
type Wallet struct {
	signer     KeySigner
	mu         sync.RWMutex
	privateKey string
	publicKey  string
}

func New(signer KeySigner) *Wallet {
	return &Wallet{signer: signer}
}

func (w *Wallet) HasKeys() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.privateKey != ""
}

// EnsureKeys generates the keypair unless one exists and returns the public key
// in effect. Concurrent callers observe a single generation, created is true
// only for the caller that performed it.
func (w *Wallet) EnsureKeys() (publicKey string, created bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.privateKey != "" {
		return w.publicKey, false, nil
	}

	private, public, err := w.signer.GenerateKeypair()
	if err != nil {
		return "", false, err
	}

	w.privateKey = private
	w.publicKey = public

	return public, true, nil
}

func (w *Wallet) PublicKey() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.publicKey
}

func (w *Wallet) PrivateKey() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.privateKey
}

// SignTransaction signs a transfer from the wallet's own identity.
func (w *Wallet) SignTransaction(receiver string, amount float64) (sender string, signature string, err error) {
	w.mu.RLock()
	private, public := w.privateKey, w.publicKey
	w.mu.RUnlock()

	if private == "" {
		return "", "", ErrNoKeys
	}

	signature, err = w.signer.Sign(private, public, receiver, amount)
	if err != nil {
		return "", "", err
	}

	return public, signature, nil
}
