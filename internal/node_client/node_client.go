package node_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/powledger/powledger/internal/broadcaster"
	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/pkg/api"
	"github.com/powledger/powledger/pkg/tracing"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecodeResponse   = errors.New("failed to decode response")
)

// NodeClient reads the state of a running node over its HTTP API.
type NodeClient struct {
	client            http.Client
	address           string
	logger            *slog.Logger
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithLogger(logger *slog.Logger) func(*NodeClient) {
	return func(c *NodeClient) {
		c.logger = logger
	}
}

func WithTimeout(timeout time.Duration) func(*NodeClient) {
	return func(c *NodeClient) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

func WithTracer(attr ...attribute.KeyValue) func(s *NodeClient) {
	return func(p *NodeClient) {
		p.tracingEnabled = true
		if len(attr) > 0 {
			p.tracingAttributes = append(p.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			p.tracingAttributes = append(p.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(address string, opts ...func(client *NodeClient)) *NodeClient {
	c := &NodeClient{
		client:  http.Client{Timeout: 10 * time.Second},
		address: address,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *NodeClient) GetBlockchain(ctx context.Context) (blocks []ledger.Block, err error) {
	ctx, span := tracing.StartTracing(ctx, "NodeClient_GetBlockchain", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	var wire []api.Block
	err = c.get(ctx, "/blockchain", &wire)
	if err != nil {
		return nil, err
	}

	blocks = make([]ledger.Block, len(wire))
	for i, b := range wire {
		blocks[i] = ledger.BlockFromWire(b)
	}

	return blocks, nil
}

func (c *NodeClient) GetBlockchainWithRetries(ctx context.Context, constantBackoff time.Duration, retries uint64) ([]ledger.Block, error) {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(constantBackoff), retries)

	policyContext := backoff.WithContext(policy, ctx)

	operation := func() ([]ledger.Block, error) {
		blocks, err := c.GetBlockchain(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get blockchain from node: %w", err)
		}
		return blocks, nil
	}

	notify := func(err error, nextTry time.Duration) {
		c.logger.Error("failed to get blockchain from node", slog.String("address", c.address), slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	return backoff.RetryNotifyWithData(operation, policyContext, notify)
}

func (c *NodeClient) GetHealth(ctx context.Context) (health api.HealthResponse, err error) {
	ctx, span := tracing.StartTracing(ctx, "NodeClient_GetHealth", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	err = c.get(ctx, "/health", &health, http.StatusServiceUnavailable)
	return health, err
}

func (c *NodeClient) get(ctx context.Context, path string, v any, acceptedStatus ...int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, broadcaster.PeerURL(c.address, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && !slices.Contains(acceptedStatus, resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Join(ErrUnexpectedStatus, fmt.Errorf("status: %d, body: %s", resp.StatusCode, body))
	}

	err = json.NewDecoder(resp.Body).Decode(v)
	if err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}

	return nil
}
