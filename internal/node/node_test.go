package node_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/internal/ledger/store/memory"
	"github.com/powledger/powledger/internal/node"
	"github.com/powledger/powledger/internal/node/mocks"
	"github.com/powledger/powledger/internal/pool"
	"github.com/powledger/powledger/internal/signer"
)

const (
	testKeyBits = 1024
	testReward  = 10
)

type keypair struct {
	private string
	public  string
}

func newKeypair(t *testing.T, s *signer.RSA) keypair {
	t.Helper()

	private, public, err := s.GenerateKeypair()
	require.NoError(t, err)

	return keypair{private: private, public: public}
}

func newBroadcasterMock() *mocks.BroadcasterMock {
	return &mocks.BroadcasterMock{
		SendTransactionFunc: func(_ []string, _ ledger.Transaction) {},
		SendBlockFunc:       func(_ []string, _ ledger.Block) {},
	}
}

func newTestNode(s node.Signer, b node.Broadcaster, opts ...node.Option) *node.Node {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	opts = append([]node.Option{
		node.WithLogger(logger),
		node.WithDifficulty(2),
		node.WithMiningReward(testReward),
	}, opts...)

	return node.New(memory.New(), pool.New(), s, b, opts...)
}

func signedTransaction(t *testing.T, s *signer.RSA, from keypair, receiver string, amount float64) ledger.Transaction {
	t.Helper()

	signature, err := s.Sign(from.private, from.public, receiver, amount)
	require.NoError(t, err)

	return ledger.Transaction{Sender: from.public, Receiver: receiver, Amount: amount, Signature: signature}
}

func TestNode_MineAndTransfer(t *testing.T) {
	// given
	s := signer.New(signer.WithKeyBits(testKeyBits))
	alice := newKeypair(t, s)
	bob := newKeypair(t, s)

	broadcaster := newBroadcasterMock()
	sut := newTestNode(s, broadcaster, node.WithIdentity(alice.public), node.WithPeers("peer-1:5000", "peer-2:5000"))

	// when
	first, err := sut.MineBlock(context.Background())
	require.NoError(t, err)

	tx := signedTransaction(t, s, alice, bob.public, 3)
	created, err := sut.CreateTransaction(context.Background(), tx.Receiver, tx.Sender, tx.Signature, tx.Amount)
	require.NoError(t, err)

	pendingBalance, err := sut.Balance("")
	require.NoError(t, err)

	second, err := sut.MineBlock(context.Background())
	require.NoError(t, err)

	// then
	assert.Equal(t, tx, created)
	assert.Equal(t, float64(testReward-3), pendingBalance)

	assert.Equal(t, uint64(1), first.Index)
	assert.Equal(t, uint64(2), second.Index)
	assert.Equal(t, ledger.CanonicalHash(first), second.PreviousHash)
	require.Len(t, second.Transactions, 2)
	assert.Equal(t, tx, second.Transactions[0])
	assert.Equal(t, ledger.MiningRewardSender, second.Transactions[1].Sender)
	assert.Equal(t, alice.public, second.Transactions[1].Receiver)

	aliceBalance, err := sut.Balance(alice.public)
	require.NoError(t, err)
	bobBalance, err := sut.Balance(bob.public)
	require.NoError(t, err)

	assert.Equal(t, float64(2*testReward-3), aliceBalance)
	assert.Equal(t, float64(3), bobBalance)
	assert.Empty(t, sut.PendingTransactions())
	assert.Len(t, sut.Chain(), 3)
	assert.Equal(t, uint64(2), sut.Height())
	require.NoError(t, sut.ValidateChain(context.Background()))
	require.NoError(t, sut.Health())

	require.Len(t, broadcaster.SendTransactionCalls(), 1)
	assert.Equal(t, []string{"peer-1:5000", "peer-2:5000"}, broadcaster.SendTransactionCalls()[0].Peers)
	require.Len(t, broadcaster.SendBlockCalls(), 2)
	assert.Equal(t, second, broadcaster.SendBlockCalls()[1].Block)
}

func TestNode_CreateTransaction(t *testing.T) {
	s := signer.New(signer.WithKeyBits(testKeyBits))
	alice := newKeypair(t, s)
	bob := newKeypair(t, s)

	tt := []struct {
		name        string
		tx          func(t *testing.T) ledger.Transaction
		signatureOK bool

		expectedError error
	}{
		{
			name: "success",
			tx: func(t *testing.T) ledger.Transaction {
				return signedTransaction(t, s, alice, bob.public, 4)
			},
			signatureOK: true,
		},
		{
			name: "spends the whole balance",
			tx: func(t *testing.T) ledger.Transaction {
				return signedTransaction(t, s, alice, bob.public, testReward)
			},
			signatureOK: true,
		},
		{
			name: "insufficient balance",
			tx: func(t *testing.T) ledger.Transaction {
				return signedTransaction(t, s, alice, bob.public, testReward+1)
			},
			signatureOK:   true,
			expectedError: ledger.ErrInsufficientBalance,
		},
		{
			name: "sender without funds",
			tx: func(t *testing.T) ledger.Transaction {
				return signedTransaction(t, s, bob, alice.public, 1)
			},
			signatureOK:   true,
			expectedError: ledger.ErrInsufficientBalance,
		},
		{
			name: "invalid signature",
			tx: func(t *testing.T) ledger.Transaction {
				return signedTransaction(t, s, alice, bob.public, 1)
			},
			signatureOK:   false,
			expectedError: ledger.ErrInvalidSignature,
		},
		{
			name: "negative amount",
			tx: func(_ *testing.T) ledger.Transaction {
				return ledger.Transaction{Sender: alice.public, Receiver: bob.public, Amount: -1, Signature: "ff"}
			},
			signatureOK:   true,
			expectedError: ledger.ErrMalformedInput,
		},
		{
			name: "NaN amount",
			tx: func(_ *testing.T) ledger.Transaction {
				return ledger.Transaction{Sender: alice.public, Receiver: bob.public, Amount: math.NaN(), Signature: "ff"}
			},
			signatureOK:   true,
			expectedError: ledger.ErrMalformedInput,
		},
		{
			name: "missing receiver",
			tx: func(_ *testing.T) ledger.Transaction {
				return ledger.Transaction{Sender: alice.public, Amount: 1, Signature: "ff"}
			},
			signatureOK:   true,
			expectedError: ledger.ErrMalformedInput,
		},
		{
			name: "reward sender",
			tx: func(_ *testing.T) ledger.Transaction {
				return ledger.Transaction{Sender: ledger.MiningRewardSender, Receiver: bob.public, Amount: 1}
			},
			signatureOK:   true,
			expectedError: node.ErrRewardSender,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			signerMock := &mocks.SignerMock{
				VerifyFunc: func(_ ledger.Transaction) bool {
					return tc.signatureOK
				},
			}
			broadcaster := newBroadcasterMock()
			sut := newTestNode(signerMock, broadcaster, node.WithIdentity(alice.public), node.WithPeers("peer:5000"))

			_, err := sut.MineBlock(context.Background())
			require.NoError(t, err)

			tx := tc.tx(t)

			// when
			_, actualErr := sut.CreateTransaction(context.Background(), tx.Receiver, tx.Sender, tx.Signature, tx.Amount)

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, actualErr, tc.expectedError)
				assert.Equal(t, ledger.KindValidation, ledger.KindOf(actualErr))
				assert.Empty(t, sut.PendingTransactions())
				assert.Empty(t, broadcaster.SendTransactionCalls())
				return
			}

			require.NoError(t, actualErr)
			assert.Equal(t, []ledger.Transaction{tx}, sut.PendingTransactions())
			assert.Len(t, broadcaster.SendTransactionCalls(), 1)
		})
	}
}

func TestNode_PendingSpendsCountAgainstBalance(t *testing.T) {
	// given
	s := signer.New(signer.WithKeyBits(testKeyBits))
	alice := newKeypair(t, s)
	bob := newKeypair(t, s)

	sut := newTestNode(s, newBroadcasterMock(), node.WithIdentity(alice.public))
	_, err := sut.MineBlock(context.Background())
	require.NoError(t, err)

	// when
	err = sut.AddTransaction(context.Background(), signedTransaction(t, s, alice, bob.public, 6))
	require.NoError(t, err)
	err = sut.AddTransaction(context.Background(), signedTransaction(t, s, alice, bob.public, 6))

	// then
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)
	assert.Len(t, sut.PendingTransactions(), 1)

	bobBalance, err := sut.Balance(bob.public)
	require.NoError(t, err)
	assert.Equal(t, float64(0), bobBalance)
}

func TestNode_AddBlock(t *testing.T) {
	s := signer.New(signer.WithKeyBits(testKeyBits))
	alice := newKeypair(t, s)
	carol := newKeypair(t, s)

	// A peer with an identical genesis produces a chain of two blocks.
	peer := newTestNode(s, newBroadcasterMock(), node.WithIdentity(carol.public))
	peerFirst, err := peer.MineBlock(context.Background())
	require.NoError(t, err)
	peerSecond, err := peer.MineBlock(context.Background())
	require.NoError(t, err)

	tamperedHash := peerFirst.Clone()
	tamperedHash.PreviousHash = "0000000000000000000000000000000000000000000000000000000000000000"

	tamperedProof := peerFirst.Clone()
	tamperedProof.Proof++

	tamperedReward := peerFirst.Clone()
	tamperedReward.Transactions[0].Amount = 1000

	tt := []struct {
		name         string
		minedLocally int
		block        ledger.Block

		expectedError  error
		expectedKind   ledger.ErrorKind
		expectedHeight uint64
	}{
		{
			name:           "extends tip",
			block:          peerFirst,
			expectedHeight: 1,
		},
		{
			name:           "reward is not part of the proof",
			block:          tamperedReward,
			expectedHeight: 1,
		},
		{
			name:           "previous hash mismatch",
			block:          tamperedHash,
			expectedError:  ledger.ErrPreviousHashMismatch,
			expectedKind:   ledger.KindValidation,
			expectedHeight: 0,
		},
		{
			name:           "invalid proof",
			block:          tamperedProof,
			expectedError:  ledger.ErrInvalidProof,
			expectedKind:   ledger.KindValidation,
			expectedHeight: 0,
		},
		{
			name:           "ahead of tip",
			block:          peerSecond,
			expectedError:  ledger.ErrBlockAheadOfTip,
			expectedKind:   ledger.KindSequence,
			expectedHeight: 0,
		},
		{
			name:           "behind tip",
			minedLocally:   2,
			block:          peerFirst,
			expectedError:  ledger.ErrBlockBehindTip,
			expectedKind:   ledger.KindSequence,
			expectedHeight: 2,
		},
		{
			name:           "competing block at the same height",
			minedLocally:   1,
			block:          peerFirst,
			expectedError:  ledger.ErrBlockBehindTip,
			expectedKind:   ledger.KindSequence,
			expectedHeight: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := newTestNode(s, newBroadcasterMock(), node.WithIdentity(alice.public))
			for range tc.minedLocally {
				_, err := sut.MineBlock(context.Background())
				require.NoError(t, err)
			}
			before := sut.Chain()

			// when
			actualErr := sut.AddBlock(context.Background(), tc.block)

			// then
			assert.Equal(t, tc.expectedHeight, sut.Height())

			if tc.expectedError != nil {
				require.ErrorIs(t, actualErr, tc.expectedError)
				assert.Equal(t, tc.expectedKind, ledger.KindOf(actualErr))
				assert.Equal(t, before, sut.Chain())
				return
			}

			require.NoError(t, actualErr)
			assert.Equal(t, tc.block, sut.Chain()[tc.expectedHeight])
			require.NoError(t, sut.ValidateChain(context.Background()))
		})
	}
}

func TestNode_AddBlockPrunesPool(t *testing.T) {
	// given
	s := signer.New(signer.WithKeyBits(testKeyBits))
	alice := newKeypair(t, s)
	bob := newKeypair(t, s)

	miner := newTestNode(s, newBroadcasterMock(), node.WithIdentity(alice.public))
	follower := newTestNode(s, newBroadcasterMock(), node.WithIdentity(bob.public))

	funding, err := miner.MineBlock(context.Background())
	require.NoError(t, err)
	require.NoError(t, follower.AddBlock(context.Background(), funding))

	relayed := signedTransaction(t, s, alice, bob.public, 3)
	unrelated := signedTransaction(t, s, alice, "someone", 2)

	require.NoError(t, miner.AddTransaction(context.Background(), relayed))
	require.NoError(t, follower.AddTransaction(context.Background(), relayed))
	require.NoError(t, follower.AddTransaction(context.Background(), unrelated))

	mined, err := miner.MineBlock(context.Background())
	require.NoError(t, err)

	// when
	err = follower.AddBlock(context.Background(), mined)

	// then
	require.NoError(t, err)
	assert.Equal(t, []ledger.Transaction{unrelated}, follower.PendingTransactions())

	bobBalance, err := follower.Balance("")
	require.NoError(t, err)
	assert.Equal(t, float64(3), bobBalance)

	aliceBalance, err := follower.Balance(alice.public)
	require.NoError(t, err)
	assert.Equal(t, float64(2*testReward-3-2), aliceBalance)
}

func TestNode_NotReady(t *testing.T) {
	// given
	sut := newTestNode(&mocks.SignerMock{}, newBroadcasterMock())

	// when
	_, mineErr := sut.MineBlock(context.Background())
	_, balanceErr := sut.Balance("")

	// then
	require.ErrorIs(t, mineErr, ledger.ErrNoIdentity)
	assert.Equal(t, ledger.KindNotReady, ledger.KindOf(mineErr))
	require.ErrorIs(t, balanceErr, ledger.ErrNoIdentity)
	assert.Equal(t, ledger.KindNotReady, ledger.KindOf(balanceErr))
	assert.Len(t, sut.Chain(), 1)

	// when
	sut.SetIdentity("miner")
	block, err := sut.MineBlock(context.Background())

	// then
	require.NoError(t, err)
	assert.Equal(t, "miner", sut.Identity())
	assert.Equal(t, "miner", block.Transactions[0].Receiver)
}

func TestNode_MineBlockInterrupted(t *testing.T) {
	// given
	broadcaster := newBroadcasterMock()
	sut := newTestNode(&mocks.SignerMock{}, broadcaster, node.WithIdentity("miner"), node.WithDifficulty(ledger.MaxDifficulty))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// when
	_, err := sut.MineBlock(ctx)

	// then
	require.ErrorIs(t, err, ledger.ErrMiningInterrupted)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, ledger.KindInterrupted, ledger.KindOf(err))
	assert.Len(t, sut.Chain(), 1)
	assert.Empty(t, broadcaster.SendBlockCalls())
}

func TestNode_MineBlockCancelledByPeerBlock(t *testing.T) {
	// given
	searching := make(chan struct{}, 1)
	broadcaster := newBroadcasterMock()
	signerMock := &mocks.SignerMock{
		VerifyFunc: func(_ ledger.Transaction) bool {
			return true
		},
	}
	sut := newTestNode(signerMock, broadcaster,
		node.WithIdentity("miner"),
		node.WithDifficulty(6),
		node.WithNow(func() time.Time {
			select {
			case searching <- struct{}{}:
			default:
			}
			return time.Unix(1700000000, 0)
		}),
	)

	// solved at difficulty 6 on top of genesis, the local search on an empty
	// pool needs 982544 attempts
	peerBlock := ledger.Block{
		Index:        1,
		PreviousHash: ledger.CanonicalHash(ledger.Genesis()),
		Timestamp:    1700000001,
		Proof:        14561244,
		Transactions: []ledger.Transaction{
			{Sender: "a", Receiver: "b", Amount: 1, Signature: "ff"},
			{Sender: ledger.MiningRewardSender, Receiver: "peer", Amount: testReward},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	type result struct {
		block ledger.Block
		err   error
	}
	mined := make(chan result, 1)

	// when
	go func() {
		block, err := sut.MineBlock(ctx)
		mined <- result{block: block, err: err}
	}()

	<-searching
	addErr := sut.AddBlock(context.Background(), peerBlock)
	actual := <-mined

	// then
	require.NoError(t, addErr)
	require.ErrorIs(t, actual.err, ledger.ErrMiningInterrupted)
	require.ErrorIs(t, actual.err, context.Canceled)
	assert.Equal(t, ledger.KindInterrupted, ledger.KindOf(actual.err))
	assert.NoError(t, ctx.Err())

	chain := sut.Chain()
	require.Len(t, chain, 2)
	assert.Equal(t, peerBlock, chain[1])
	assert.Empty(t, broadcaster.SendBlockCalls())
}

func TestNode_MineBlockKeepsTransactionsAdmittedDuringSearch(t *testing.T) {
	// given
	first := ledger.Transaction{Sender: "miner", Receiver: "a", Amount: 1, Signature: "01"}
	late := ledger.Transaction{Sender: "miner", Receiver: "b", Amount: 1, Signature: "02"}

	var (
		sut      *node.Node
		mining   atomic.Bool
		admitted sync.Once
		lateErr  error
	)

	signerMock := &mocks.SignerMock{
		VerifyFunc: func(tx ledger.Transaction) bool {
			// the node re-verifies the snapshot after the search, before committing
			if tx == first && mining.Load() {
				admitted.Do(func() {
					lateErr = sut.AddTransaction(context.Background(), late)
				})
			}
			return true
		},
	}
	broadcaster := newBroadcasterMock()
	sut = newTestNode(signerMock, broadcaster, node.WithIdentity("miner"))

	_, err := sut.MineBlock(context.Background())
	require.NoError(t, err)
	require.NoError(t, sut.AddTransaction(context.Background(), first))

	// when
	mining.Store(true)
	block, err := sut.MineBlock(context.Background())

	// then
	require.NoError(t, err)
	require.NoError(t, lateErr)
	require.Len(t, block.Transactions, 2)
	assert.Equal(t, first, block.Transactions[0])
	assert.Equal(t, ledger.MiningRewardSender, block.Transactions[1].Sender)
	assert.Equal(t, []ledger.Transaction{late}, sut.PendingTransactions())
	assert.Len(t, sut.Chain(), 3)
	assert.Len(t, broadcaster.SendBlockCalls(), 2)
}

func TestNode_MineBlockTipMovedBeforeCommit(t *testing.T) {
	// given
	first := ledger.Transaction{Sender: "miner", Receiver: "a", Amount: 1, Signature: "01"}

	var (
		sut      *node.Node
		tip      ledger.Block
		mining   atomic.Bool
		accepted sync.Once
		peer     ledger.Block
		addErr   error
	)

	signerMock := &mocks.SignerMock{
		VerifyFunc: func(tx ledger.Transaction) bool {
			if tx == first && mining.Load() {
				accepted.Do(func() {
					previousHash := ledger.CanonicalHash(tip)
					proof, err := ledger.NewProofOfWork(2).Search(context.Background(), []ledger.Transaction{}, previousHash)
					if err != nil {
						addErr = err
						return
					}

					peer = ledger.Block{
						Index:        tip.Index + 1,
						PreviousHash: previousHash,
						Timestamp:    1700000002,
						Proof:        proof,
						Transactions: []ledger.Transaction{{Sender: ledger.MiningRewardSender, Receiver: "peer", Amount: testReward}},
					}
					addErr = sut.AddBlock(context.Background(), peer)
				})
			}
			return true
		},
	}
	broadcaster := newBroadcasterMock()
	sut = newTestNode(signerMock, broadcaster, node.WithIdentity("miner"))

	var err error
	tip, err = sut.MineBlock(context.Background())
	require.NoError(t, err)
	require.NoError(t, sut.AddTransaction(context.Background(), first))

	// when
	mining.Store(true)
	_, err = sut.MineBlock(context.Background())

	// then
	require.NoError(t, addErr)
	require.ErrorIs(t, err, node.ErrTipMoved)
	assert.Equal(t, ledger.KindInterrupted, ledger.KindOf(err))

	chain := sut.Chain()
	require.Len(t, chain, 3)
	assert.Equal(t, peer, chain[2])
	assert.Equal(t, []ledger.Transaction{first}, sut.PendingTransactions())
	assert.Len(t, broadcaster.SendBlockCalls(), 1)
}

func TestNode_Peers(t *testing.T) {
	// given
	sut := newTestNode(&mocks.SignerMock{}, newBroadcasterMock(), node.WithPeers("c:5000"))

	// when
	added, err := sut.AddPeer(" a:5000 ")
	require.NoError(t, err)
	_, err = sut.AddPeer("b:5000")
	require.NoError(t, err)
	_, err = sut.AddPeer("a:5000")
	require.NoError(t, err)
	_, emptyErr := sut.AddPeer("  ")

	// then
	assert.Equal(t, "a:5000", added)
	assert.Equal(t, []string{"a:5000", "b:5000", "c:5000"}, sut.Peers())
	require.ErrorIs(t, emptyErr, node.ErrEmptyPeer)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(emptyErr))
}

func TestNode_Stats(t *testing.T) {
	// given
	stats, err := node.NewStats()
	require.NoError(t, err)
	defer stats.UnregisterStats()

	sut := newTestNode(&mocks.SignerMock{}, newBroadcasterMock(), node.WithIdentity("miner"), node.WithStats(stats))

	// when
	_, err = sut.MineBlock(context.Background())

	// then
	require.NoError(t, err)

	_, err = node.NewStats()
	require.ErrorIs(t, err, node.ErrFailedToRegisterStats)
}
