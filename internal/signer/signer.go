package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/powledger/powledger/internal/ledger"
)

const DefaultKeyBits = 2048

var (
	ErrDecodeKey       = errors.New("failed to decode key")
	ErrNotRSAKey       = errors.New("key is not an RSA key")
	ErrGenerateKeypair = errors.New("failed to generate keypair")
	ErrSign            = errors.New("failed to sign transaction")
)

// RSA signs with RSASSA-PKCS1-v1_5 over SHA-256. Private keys travel as hex of
// PKCS#1 DER, public keys (identities) as hex of PKIX DER.
type RSA struct {
	keyBits int
}

func WithKeyBits(bits int) func(*RSA) {
	return func(s *RSA) {
		s.keyBits = bits
	}
}

func New(opts ...func(*RSA)) *RSA {
	s := &RSA{keyBits: DefaultKeyBits}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RSA) GenerateKeypair() (privateKey string, publicKey string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, s.keyBits)
	if err != nil {
		return "", "", errors.Join(ErrGenerateKeypair, err)
	}

	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", errors.Join(ErrGenerateKeypair, err)
	}

	return hex.EncodeToString(x509.MarshalPKCS1PrivateKey(key)), hex.EncodeToString(pub), nil
}

func (s *RSA) Sign(privateKey, sender, receiver string, amount float64) (string, error) {
	key, err := parsePrivateKey(privateKey)
	if err != nil {
		return "", errors.Join(ErrSign, err)
	}

	digest := sha256.Sum256(ledger.SigningPayload(sender, receiver, amount))

	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", errors.Join(ErrSign, err)
	}

	return hex.EncodeToString(sig), nil
}

// Verify treats the sender as the hex encoded public key. Any decoding problem
// counts as a failed verification.
func (s *RSA) Verify(tx ledger.Transaction) bool {
	key, err := parsePublicKey(tx.Sender)
	if err != nil {
		return false
	}

	sig, err := hex.DecodeString(tx.Signature)
	if err != nil || len(sig) == 0 {
		return false
	}

	digest := sha256.Sum256(tx.SigningPayload())

	return rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], sig) == nil
}

func parsePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	der, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrDecodeKey, err)
	}

	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, errors.Join(ErrDecodeKey, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.Join(ErrNotRSAKey, fmt.Errorf("type: %T", parsed))
	}

	return key, nil
}

func parsePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrDecodeKey, err)
	}

	if key, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, errors.Join(ErrDecodeKey, err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.Join(ErrNotRSAKey, fmt.Errorf("type: %T", parsed))
	}

	return key, nil
}
