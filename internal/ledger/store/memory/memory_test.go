package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/internal/ledger/store"
)

func TestStore(t *testing.T) {
	t.Run("seeded with genesis", func(t *testing.T) {
		// when
		sut := New()

		// then
		assert.Equal(t, ledger.Genesis(), sut.Genesis())
		assert.Equal(t, ledger.Genesis(), sut.Last())
		assert.Equal(t, uint64(0), sut.Height())
		assert.Len(t, sut.Blocks(), 1)
	})

	t.Run("append and lookup", func(t *testing.T) {
		// given
		sut := New()
		block := ledger.Block{
			Index:        1,
			PreviousHash: ledger.CanonicalHash(ledger.Genesis()),
			Transactions: []ledger.Transaction{{Sender: ledger.MiningRewardSender, Receiver: "m", Amount: 10}},
			Proof:        5,
		}

		// when
		sut.Append(block)

		// then
		assert.Equal(t, block, sut.Last())
		assert.Equal(t, uint64(1), sut.Height())

		actual, err := sut.At(1)
		require.NoError(t, err)
		assert.Equal(t, block, actual)

		_, err = sut.At(2)
		require.ErrorIs(t, err, store.ErrBlockNotFound)

		_, err = sut.At(math.MaxUint64)
		require.ErrorIs(t, err, store.ErrBlockNotFound)
	})

	t.Run("returned blocks cannot mutate history", func(t *testing.T) {
		// given
		sut := New()
		sut.Append(ledger.Block{Index: 1, Transactions: []ledger.Transaction{{Sender: "a", Receiver: "b", Amount: 1}}})

		// when
		last := sut.Last()
		last.Transactions[0].Amount = 99
		blocks := sut.Blocks()
		blocks[1].Transactions[0].Receiver = "c"

		// then
		actual, err := sut.At(1)
		require.NoError(t, err)
		assert.Equal(t, float64(1), actual.Transactions[0].Amount)
		assert.Equal(t, "b", actual.Transactions[0].Receiver)
	})
}
