package node

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/powledger/powledger/internal/balance"
	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/internal/ledger/store"
	"github.com/powledger/powledger/internal/pool"
	"github.com/powledger/powledger/pkg/tracing"
)

var (
	ErrTipMoved     = errors.New("chain tip moved while mining")
	ErrEmptyPeer    = errors.New("peer address is empty")
	ErrRewardSender = errors.New("reward sender cannot be submitted")
)

// Node owns the chain, the pending pool and the peer set. All mutations of the
// chain and pool happen under mu; the proof of work search runs without it.
type Node struct {
	logger            *slog.Logger
	store             store.LedgerStore
	pool              *pool.Pool
	balances          BalanceLedger
	signer            Signer
	broadcaster       Broadcaster
	pow               *ledger.ProofOfWork
	miningReward      float64
	now               func() time.Time
	stats             *Stats
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue

	mu           sync.RWMutex
	identity     string
	cancelMining context.CancelFunc

	// miningMu allows a single search at a time.
	miningMu sync.Mutex

	peersMu sync.RWMutex
	peers   map[string]struct{}
}

const DefaultMiningReward = 10

func New(ledgerStore store.LedgerStore, txPool *pool.Pool, signer Signer, broadcaster Broadcaster, opts ...Option) *Node {
	n := &Node{
		logger:       slog.Default().With(slog.String("module", "node")),
		store:        ledgerStore,
		pool:         txPool,
		signer:       signer,
		broadcaster:  broadcaster,
		pow:          ledger.NewProofOfWork(ledger.DefaultDifficulty),
		miningReward: DefaultMiningReward,
		now:          time.Now,
		peers:        make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.balances == nil {
		n.balances = balance.NewCached(balance.New(ledgerStore, txPool))
	}

	n.observeChain()

	return n
}

func (n *Node) Identity() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.identity
}

func (n *Node) SetIdentity(identity string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.identity = identity
}

func (n *Node) Difficulty() int {
	return n.pow.Difficulty()
}

// CreateTransaction admits a locally signed transaction and relays it to all peers.
func (n *Node) CreateTransaction(ctx context.Context, receiver, sender, signature string, amount float64) (tx ledger.Transaction, err error) {
	_, span := tracing.StartTracing(ctx, "Node_CreateTransaction", n.tracingEnabled, n.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	tx = ledger.Transaction{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Signature: signature,
	}

	err = n.admit(tx)
	if err != nil {
		return ledger.Transaction{}, err
	}

	n.broadcaster.SendTransaction(n.Peers(), tx)

	return tx, nil
}

// AddTransaction admits a transaction relayed by a peer. It is never relayed again.
func (n *Node) AddTransaction(ctx context.Context, tx ledger.Transaction) (err error) {
	_, span := tracing.StartTracing(ctx, "Node_AddTransaction", n.tracingEnabled, n.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	return n.admit(tx)
}

func (n *Node) admit(tx ledger.Transaction) error {
	err := checkTransactionShape(tx)
	if err != nil {
		n.rejectTransaction(tx, err)
		return err
	}

	if !n.signer.Verify(tx) {
		err = ledger.NewError(ledger.ErrInvalidSignature, ledger.KindValidation)
		n.rejectTransaction(tx, err)
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	available := n.balances.Balance(tx.Sender)
	if available < tx.Amount {
		err = ledger.NewError(errors.Join(ledger.ErrInsufficientBalance, fmt.Errorf("balance: %s, amount: %s", ledger.FormatAmount(available), ledger.FormatAmount(tx.Amount))), ledger.KindValidation)
		n.rejectTransaction(tx, err)
		return err
	}

	n.pool.Add(tx)
	n.balances.Invalidate()

	if n.stats != nil {
		n.stats.transactionsAdmitted.Inc()
		n.stats.pendingTransactions.Set(float64(n.pool.Len()))
	}

	n.logger.Debug("Transaction admitted", slog.String("receiver", shorten(tx.Receiver)), slog.String("amount", ledger.FormatAmount(tx.Amount)))

	return nil
}

func (n *Node) rejectTransaction(tx ledger.Transaction, err error) {
	if n.stats != nil {
		n.stats.transactionsRejected.Inc()
	}

	n.logger.Warn("Transaction rejected", slog.String("sender", shorten(tx.Sender)), slog.String("err", err.Error()))
}

func checkTransactionShape(tx ledger.Transaction) error {
	switch {
	case tx.Sender == "" || tx.Receiver == "":
		return ledger.NewError(errors.Join(ledger.ErrMalformedInput, errors.New("sender and receiver are required")), ledger.KindValidation)
	case tx.IsReward():
		return ledger.NewError(errors.Join(ledger.ErrMalformedInput, ErrRewardSender), ledger.KindValidation)
	case math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) || tx.Amount < 0:
		return ledger.NewError(errors.Join(ledger.ErrMalformedInput, fmt.Errorf("invalid amount: %v", tx.Amount)), ledger.KindValidation)
	}

	return nil
}

// MineBlock searches a proof for a snapshot of the pool, appends the block with
// the reward to this node's identity and relays it. The search is aborted when
// ctx is done or a peer block is accepted meanwhile.
func (n *Node) MineBlock(ctx context.Context) (block ledger.Block, err error) {
	ctx, span := tracing.StartTracing(ctx, "Node_MineBlock", n.tracingEnabled, n.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	n.miningMu.Lock()
	defer n.miningMu.Unlock()

	n.mu.Lock()
	identity := n.identity
	if identity == "" {
		n.mu.Unlock()
		return ledger.Block{}, ledger.NewError(ledger.ErrNoIdentity, ledger.KindNotReady)
	}

	last := n.store.Last()
	previousHash := ledger.CanonicalHash(last)
	pending := n.pool.Pending()

	searchCtx, cancel := context.WithCancel(ctx)
	n.cancelMining = cancel
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		n.cancelMining = nil
		n.mu.Unlock()
		cancel()
	}()

	start := n.now()
	proof, err := n.pow.Search(searchCtx, pending, previousHash)
	if err != nil {
		n.logger.Info("Mining interrupted", slog.Uint64("index", last.Index+1), slog.String("err", err.Error()))
		return ledger.Block{}, err
	}
	elapsed := n.now().Sub(start)

	for _, tx := range pending {
		if !n.signer.Verify(tx) {
			return ledger.Block{}, ledger.NewError(errors.Join(ledger.ErrInvalidSignature, fmt.Errorf("pending transaction from %s", shorten(tx.Sender))), ledger.KindValidation)
		}
	}

	txs := make([]ledger.Transaction, 0, len(pending)+1)
	txs = append(txs, pending...)
	txs = append(txs, ledger.Transaction{
		Sender:   ledger.MiningRewardSender,
		Receiver: identity,
		Amount:   n.miningReward,
	})

	n.mu.Lock()
	if n.store.Last().Index != last.Index {
		n.mu.Unlock()
		return ledger.Block{}, ledger.NewError(errors.Join(ledger.ErrMiningInterrupted, ErrTipMoved), ledger.KindInterrupted)
	}

	block = ledger.Block{
		Index:        last.Index + 1,
		PreviousHash: previousHash,
		Timestamp:    unixSeconds(n.now()),
		Transactions: txs,
		Proof:        proof,
	}

	n.store.Append(block)
	n.pool.Remove(pending)
	n.balances.Invalidate()

	if n.stats != nil {
		n.stats.blocksMined.Inc()
		n.stats.miningDuration.Observe(elapsed.Seconds())
	}
	n.observeChain()
	n.mu.Unlock()

	n.logger.Info("Block mined",
		slog.Uint64("index", block.Index),
		slog.Uint64("proof", block.Proof),
		slog.Int("transactions", len(block.Transactions)),
		slog.String("duration", elapsed.String()),
	)

	n.broadcaster.SendBlock(n.Peers(), block)

	return block.Clone(), nil
}

// AddBlock appends a block mined by a peer if it extends the local tip.
// Accepting a block aborts any search in progress.
func (n *Node) AddBlock(ctx context.Context, block ledger.Block) (err error) {
	_, span := tracing.StartTracing(ctx, "Node_AddBlock", n.tracingEnabled, slices.Concat(n.tracingAttributes, []attribute.KeyValue{attribute.String("index", strconv.FormatUint(block.Index, 10))})...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	defer func() {
		if err != nil && n.stats != nil {
			n.stats.blocksRejected.Inc()
		}
	}()

	for _, tx := range block.Transactions {
		if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) || tx.Amount < 0 {
			return ledger.NewError(errors.Join(ledger.ErrMalformedInput, fmt.Errorf("invalid amount: %v", tx.Amount)), ledger.KindValidation)
		}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	last := n.store.Last()
	expected := last.Index + 1

	switch {
	case block.Index < expected:
		return ledger.NewError(errors.Join(ledger.ErrBlockBehindTip, fmt.Errorf("index: %d, expected: %d", block.Index, expected)), ledger.KindSequence)
	case block.Index > expected:
		return ledger.NewError(errors.Join(ledger.ErrBlockAheadOfTip, fmt.Errorf("index: %d, expected: %d", block.Index, expected)), ledger.KindSequence)
	}

	err = ledger.ValidateBlock(n.pow, block, last)
	if err != nil {
		n.logger.Warn("Peer block rejected", slog.Uint64("index", block.Index), slog.String("err", err.Error()))
		return err
	}

	n.store.Append(block)
	pruned := n.pool.Prune(block.Transactions)
	n.balances.Invalidate()

	if n.cancelMining != nil {
		n.cancelMining()
	}

	if n.stats != nil {
		n.stats.blocksAccepted.Inc()
	}
	n.observeChain()

	n.logger.Info("Peer block accepted", slog.Uint64("index", block.Index), slog.Int("pruned", pruned))

	return nil
}

// Balance returns the spendable balance of identity, or of this node when
// identity is empty.
func (n *Node) Balance(identity string) (float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if identity == "" {
		identity = n.identity
	}

	if identity == "" {
		return 0, ledger.NewError(ledger.ErrNoIdentity, ledger.KindNotReady)
	}

	return n.balances.Balance(identity), nil
}

func (n *Node) Chain() []ledger.Block {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.store.Blocks()
}

func (n *Node) Height() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.store.Height()
}

func (n *Node) PendingTransactions() []ledger.Transaction {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.pool.Pending()
}

func (n *Node) PendingCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.pool.Len()
}

// ValidateChain re-validates every committed block against its predecessor.
func (n *Node) ValidateChain(ctx context.Context) (err error) {
	_, span := tracing.StartTracing(ctx, "Node_ValidateChain", n.tracingEnabled, n.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	return ledger.ValidateChain(n.pow, n.Chain())
}

// AddPeer registers a peer address. Adding a known peer is a no-op.
func (n *Node) AddPeer(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ledger.NewError(errors.Join(ledger.ErrMalformedInput, ErrEmptyPeer), ledger.KindValidation)
	}

	n.peersMu.Lock()
	defer n.peersMu.Unlock()

	if _, found := n.peers[address]; !found {
		n.peers[address] = struct{}{}
		n.logger.Info("Peer added", slog.String("peer", address))
	}

	return address, nil
}

// Peers returns the registered peer addresses in sorted order.
func (n *Node) Peers() []string {
	n.peersMu.RLock()
	defer n.peersMu.RUnlock()

	peers := make([]string, 0, len(n.peers))
	for p := range n.peers {
		peers = append(peers, p)
	}
	slices.Sort(peers)

	return peers
}

// Health reports an error when the committed chain no longer validates.
func (n *Node) Health() error {
	return ledger.ValidateChain(n.pow, n.Chain())
}

// observeChain must be called with mu held.
func (n *Node) observeChain() {
	if n.stats == nil {
		return
	}

	n.stats.chainHeight.Set(float64(n.store.Height()))
	n.stats.pendingTransactions.Set(float64(n.pool.Len()))
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func shorten(identity string) string {
	const maxLen = 16
	if len(identity) <= maxLen {
		return identity
	}

	return identity[len(identity)-maxLen:]
}
