package broadcaster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/powledger/powledger/internal/ledger"
)

const (
	TransactionPath = "/store-received-transaction"
	BlockPath       = "/store-received-block"

	requestTimeoutDefault = 5 * time.Second
	maxConcurrencyDefault = 16
)

var ErrBroadcasterDisposed = errors.New("broadcaster is disposed already")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PeerResult is the outcome of delivering one payload to one peer.
type PeerResult struct {
	Peer string
	Err  error
}

// PeerBroadcaster fans transactions and blocks out to peers over HTTP. Each peer
// request has its own timeout, failures are logged and never retried.
type PeerBroadcaster struct {
	client         HTTPClient
	logger         *slog.Logger
	requestTimeout time.Duration
	maxConcurrency int
	stats          *stats

	mu        sync.Mutex
	disposed  bool
	wg        sync.WaitGroup
	ctx       context.Context
	cancelAll context.CancelFunc
}

type Option func(b *PeerBroadcaster)

func WithRequestTimeout(d time.Duration) Option {
	return func(b *PeerBroadcaster) {
		if d > 0 {
			b.requestTimeout = d
		}
	}
}

func WithMaxConcurrency(n int) Option {
	return func(b *PeerBroadcaster) {
		if n > 0 {
			b.maxConcurrency = n
		}
	}
}

func New(client HTTPClient, logger *slog.Logger, opts ...Option) (*PeerBroadcaster, error) {
	s := newBroadcasterStats()

	err := registerStats(s.sentCount, s.failedCount, s.duration)
	if err != nil {
		return nil, err
	}

	b := &PeerBroadcaster{
		client:         client,
		logger:         logger.With(slog.String("module", "broadcaster")),
		requestTimeout: requestTimeoutDefault,
		maxConcurrency: maxConcurrencyDefault,
		stats:          s,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.ctx, b.cancelAll = context.WithCancel(context.Background())

	return b, nil
}

// SendTransaction relays tx to every peer in the background.
func (b *PeerBroadcaster) SendTransaction(peers []string, tx ledger.Transaction) {
	b.sendAsync(peers, TransactionPath, tx.Wire())
}

// SendBlock relays block to every peer in the background.
func (b *PeerBroadcaster) SendBlock(peers []string, block ledger.Block) {
	b.sendAsync(peers, BlockPath, block.Wire())
}

func (b *PeerBroadcaster) sendAsync(peers []string, path string, dto any) {
	if len(peers) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		b.logger.Warn("Dropping broadcast, broadcaster is stopped", slog.String("path", path))
		return
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		b.logger.Error("Couldn't marshal broadcast payload", slog.String("path", path), slog.String("err", err.Error()))
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.Broadcast(b.ctx, peers, path, payload)
	}()
}

// Broadcast posts payload to path on every peer and waits for all of them. One
// peer failing has no influence on the others.
func (b *PeerBroadcaster) Broadcast(ctx context.Context, peers []string, path string, payload []byte) []PeerResult {
	results := make([]PeerResult, len(peers))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxConcurrency)

	for i, peer := range peers {
		g.Go(func() error {
			err := b.send(gCtx, peer, path, payload)
			results[i] = PeerResult{Peer: peer, Err: err}

			if err != nil {
				b.stats.failedCount.Inc()
				b.logger.Warn("Couldn't deliver to peer",
					slog.String("peer", peer),
					slog.String("path", path),
					slog.String("err", err.Error()))
				return nil
			}

			b.stats.sentCount.Inc()
			b.logger.Debug("Delivered to peer", slog.String("peer", peer), slog.String("path", path))
			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (b *PeerBroadcaster) send(ctx context.Context, peer string, path string, payload []byte) error {
	start := time.Now()
	defer func() {
		b.stats.duration.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, b.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, PeerURL(peer, path), bytes.NewReader(payload))
	if err != nil {
		return peerError(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := b.client.Do(req)
	if err != nil {
		return peerError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return peerError(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	return nil
}

// PeerURL builds the endpoint for a peer address given as host:port or as a URL.
func PeerURL(peer string, path string) string {
	base := peer
	if !strings.Contains(peer, "://") {
		base = "http://" + peer
	}

	return strings.TrimRight(base, "/") + path
}

func peerError(err error) error {
	return ledger.NewError(errors.Join(ledger.ErrPeerUnreachable, err), ledger.KindPeerCommunication)
}

func (b *PeerBroadcaster) Health() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.disposed {
		return ErrBroadcasterDisposed
	}

	return nil
}

// GracefulStop waits for in-flight broadcasts to finish.
func (b *PeerBroadcaster) GracefulStop() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		b.logger.Info("Broadcaster is already stopped")
		return
	}
	b.disposed = true
	b.mu.Unlock()

	b.logger.Info("Stopping broadcaster")
	b.wg.Wait()
	b.cancelAll()

	unregisterStats(b.stats.sentCount, b.stats.failedCount, b.stats.duration)

	b.logger.Info("Stopped broadcaster")
}
