package node_client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/internal/node_client"
	"github.com/powledger/powledger/pkg/api"
)

func testChain() []ledger.Block {
	genesis := ledger.Genesis()
	next := ledger.Block{
		Index:        1,
		PreviousHash: ledger.CanonicalHash(genesis),
		Timestamp:    1700000000.5,
		Proof:        42,
		Transactions: []ledger.Transaction{
			{Sender: "a", Receiver: "b", Amount: 2.5, Signature: "ff"},
			{Sender: ledger.MiningRewardSender, Receiver: "a", Amount: 10},
		},
	}

	return []ledger.Block{genesis, next}
}

func TestNodeClient_GetBlockchainWithRetries(t *testing.T) {
	tt := []struct {
		name     string
		failures int32
		retries  uint64

		expectedCalls int32
		expectedError bool
	}{
		{
			name:          "first attempt succeeds",
			retries:       2,
			expectedCalls: 1,
		},
		{
			name:          "succeeds after failures",
			failures:      2,
			retries:       2,
			expectedCalls: 3,
		},
		{
			name:          "retries exhausted",
			failures:      5,
			retries:       1,
			expectedCalls: 2,
			expectedError: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			chain := testChain()
			var calls atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/blockchain", r.URL.Path)

				if calls.Add(1) <= tc.failures {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				wire := make([]api.Block, len(chain))
				for i, b := range chain {
					wire[i] = b.Wire()
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(wire)
			}))
			defer server.Close()

			sut := node_client.New(server.URL, node_client.WithTimeout(time.Second))

			// when
			actual, err := sut.GetBlockchainWithRetries(context.Background(), time.Millisecond, tc.retries)

			// then
			require.Equal(t, tc.expectedCalls, calls.Load())
			if tc.expectedError {
				require.ErrorIs(t, err, node_client.ErrUnexpectedStatus)
				return
			}

			require.NoError(t, err)
			require.Empty(t, cmp.Diff(chain, actual))
		})
	}
}

func TestNodeClient_GetHealth(t *testing.T) {
	tt := []struct {
		name   string
		status int
		body   string

		expectedHealthy bool
		expectedError   error
	}{
		{
			name:            "healthy",
			status:          http.StatusOK,
			body:            `{"healthy":true,"height":3}`,
			expectedHealthy: true,
		},
		{
			name:   "unhealthy",
			status: http.StatusServiceUnavailable,
			body:   `{"healthy":false,"height":3,"reason":"broadcaster stopped"}`,
		},
		{
			name:          "malformed body",
			status:        http.StatusOK,
			body:          `not json`,
			expectedError: node_client.ErrDecodeResponse,
		},
		{
			name:          "unexpected status",
			status:        http.StatusNotFound,
			body:          `{}`,
			expectedError: node_client.ErrUnexpectedStatus,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			sut := node_client.New(server.URL)

			// when
			actual, err := sut.GetHealth(context.Background())

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectedHealthy, actual.Healthy)
			require.Equal(t, uint64(3), actual.Height)
		})
	}
}
