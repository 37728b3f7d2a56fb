package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powledger/powledger/internal/ledger"
)

func minedChain(t *testing.T, difficulty int, length int) []ledger.Block {
	t.Helper()

	pow := ledger.NewProofOfWork(difficulty)
	blocks := []ledger.Block{ledger.Genesis()}

	for i := 1; i < length; i++ {
		previousHash := ledger.CanonicalHash(blocks[i-1])

		proof, err := pow.Search(context.Background(), nil, previousHash)
		require.NoError(t, err)

		blocks = append(blocks, ledger.Block{
			Index:        uint64(i),
			PreviousHash: previousHash,
			Timestamp:    float64(1700000000 + i),
			Proof:        proof,
			Transactions: []ledger.Transaction{{Sender: ledger.MiningRewardSender, Receiver: "miner", Amount: 10}},
		})
	}

	return blocks
}

func TestRenderChain(t *testing.T) {
	tt := []struct {
		name    string
		tamper  func(blocks []ledger.Block)
		maxRows int

		expectedRows  int
		expectedError error
	}{
		{
			name:         "valid chain",
			expectedRows: 4,
		},
		{
			name:         "last rows only",
			maxRows:      2,
			expectedRows: 2,
		},
		{
			name: "broken link",
			tamper: func(blocks []ledger.Block) {
				blocks[2].PreviousHash = "00ff"
			},
			expectedRows:  4,
			expectedError: ledger.ErrPreviousHashMismatch,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			blocks := minedChain(t, 1, 4)
			if tc.tamper != nil {
				tc.tamper(blocks)
			}

			var out bytes.Buffer

			// when
			err := renderChain(&out, blocks, 1, tc.maxRows)

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Contains(t, out.String(), "chain invalid")
			} else {
				require.NoError(t, err)
			}

			rows := 0
			for _, line := range strings.Split(out.String(), "\n") {
				if strings.HasPrefix(line, "| ") && !strings.Contains(line, "INDEX") && !strings.Contains(line, "LENGTH") {
					rows++
				}
			}
			require.Equal(t, tc.expectedRows, rows)
		})
	}
}
