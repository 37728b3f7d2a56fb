package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powledger/powledger/internal/ledger"
)

const testKeyBits = 1024

func TestRSA_SignVerify(t *testing.T) {
	sut := New(WithKeyBits(testKeyBits))

	private, public, err := sut.GenerateKeypair()
	require.NoError(t, err)
	_, otherPublic, err := sut.GenerateKeypair()
	require.NoError(t, err)

	signature, err := sut.Sign(private, public, "receiver", 3)
	require.NoError(t, err)

	signed := ledger.Transaction{Sender: public, Receiver: "receiver", Amount: 3, Signature: signature}

	flipped := []byte(signature)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}

	tt := []struct {
		name string
		tx   ledger.Transaction

		expected bool
	}{
		{
			name:     "round trip",
			tx:       signed,
			expected: true,
		},
		{
			name:     "altered receiver",
			tx:       ledger.Transaction{Sender: public, Receiver: "someone else", Amount: 3, Signature: signature},
			expected: false,
		},
		{
			name:     "altered amount",
			tx:       ledger.Transaction{Sender: public, Receiver: "receiver", Amount: 3.5, Signature: signature},
			expected: false,
		},
		{
			name:     "altered sender",
			tx:       ledger.Transaction{Sender: otherPublic, Receiver: "receiver", Amount: 3, Signature: signature},
			expected: false,
		},
		{
			name:     "altered signature",
			tx:       ledger.Transaction{Sender: public, Receiver: "receiver", Amount: 3, Signature: string(flipped)},
			expected: false,
		},
		{
			name:     "empty signature",
			tx:       ledger.Transaction{Sender: public, Receiver: "receiver", Amount: 3},
			expected: false,
		},
		{
			name:     "reward sentinel is not a key",
			tx:       ledger.Transaction{Sender: ledger.MiningRewardSender, Receiver: "receiver", Amount: 10, Signature: signature},
			expected: false,
		},
		{
			name:     "sender is not hex",
			tx:       ledger.Transaction{Sender: "zz", Receiver: "receiver", Amount: 3, Signature: signature},
			expected: false,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sut.Verify(tc.tx))
		})
	}
}

func TestRSA_SignInvalidKey(t *testing.T) {
	sut := New(WithKeyBits(testKeyBits))

	_, err := sut.Sign("not hex", "a", "b", 1)
	require.ErrorIs(t, err, ErrSign)
	require.ErrorIs(t, err, ErrDecodeKey)

	_, err = sut.Sign("00ff", "a", "b", 1)
	require.ErrorIs(t, err, ErrDecodeKey)
}
