package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/powledger/powledger/internal/ledger"
	"github.com/powledger/powledger/internal/wallet"
	"github.com/powledger/powledger/pkg/api"
	"github.com/powledger/powledger/pkg/tracing"
)

const (
	infoNodeAdded          = "Node added successfully."
	infoBlockMined         = "Block added, miner got reward"
	infoTransactionCreated = "Transaction created"
	infoTransactionAdded   = "Transaction added."
	infoBlockAdded         = "Block added"
	infoBlockIgnored       = "Block ignored, local chain is behind"
)

type DefaultHandler struct {
	logger            *slog.Logger
	node              NodeAPI
	wallet            Wallet
	stats             *Stats
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

type Option func(h *DefaultHandler)

func WithStats(stats *Stats) Option {
	return func(h *DefaultHandler) {
		h.stats = stats
	}
}

func WithTracer(attr ...attribute.KeyValue) Option {
	return func(h *DefaultHandler) {
		h.tracingEnabled = true
		if len(attr) > 0 {
			h.tracingAttributes = append(h.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			h.tracingAttributes = append(h.tracingAttributes, attribute.String("file", file))
		}
	}
}

func NewDefault(logger *slog.Logger, node NodeAPI, wallet Wallet, opts ...Option) *DefaultHandler {
	h := &DefaultHandler{
		logger: logger.With(slog.String("module", "api")),
		node:   node,
		wallet: wallet,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// GETWallet returns the node's keys and balance. Keys are generated on first
// access and become the node's identity.
func (h *DefaultHandler) GETWallet(c echo.Context) error {
	status := http.StatusOK

	publicKey, created, err := h.wallet.EnsureKeys()
	if err != nil {
		h.logger.Error("Failed to create wallet keys", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, api.InfoResponse{Info: "failed to create wallet keys"})
	}

	if created {
		h.node.SetIdentity(publicKey)
		status = http.StatusCreated
	}

	balance, err := h.node.Balance(publicKey)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(status, api.WalletResponse{
		PublicKey:  publicKey,
		PrivateKey: h.wallet.PrivateKey(),
		Balance:    balance,
	})
}

func (h *DefaultHandler) GETNodes(c echo.Context) error {
	return c.JSON(http.StatusOK, api.NodesResponse{Nodes: h.node.Peers()})
}

func (h *DefaultHandler) POSTAddNode(c echo.Context) error {
	req, err := api.DecodeAddNodeRequest(c.Request().Body)
	if err != nil {
		return h.errorResponse(c, malformed(err))
	}

	peer, err := h.node.AddPeer(req.Node)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, api.AddNodeResponse{Info: infoNodeAdded, Node: peer})
}

func (h *DefaultHandler) GETBlockchain(c echo.Context) error {
	chain := h.node.Chain()

	blocks := make([]api.Block, 0, len(chain))
	for _, b := range chain {
		blocks = append(blocks, b.Wire())
	}

	return c.JSON(http.StatusOK, blocks)
}

func (h *DefaultHandler) GETValidateBlockchain(c echo.Context) error {
	resp := api.ChainValidationResponse{Valid: true, Length: len(h.node.Chain())}

	err := h.node.ValidateChain(c.Request().Context())
	if err != nil {
		reason := err.Error()
		resp.Valid = false
		resp.Reason = &reason
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultHandler) POSTMine(c echo.Context) (err error) {
	ctx, span := tracing.StartTracing(c.Request().Context(), "POSTMine", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	block, mineErr := h.node.MineBlock(ctx)
	if mineErr != nil {
		return h.errorResponse(c, mineErr)
	}

	return c.JSON(http.StatusCreated, api.MineResponse{Info: infoBlockMined, Block: block.Wire()})
}

func (h *DefaultHandler) GETCurrentTransactions(c echo.Context) error {
	pending := h.node.PendingTransactions()

	txs := make([]api.Transaction, 0, len(pending))
	for _, tx := range pending {
		txs = append(txs, tx.Wire())
	}

	return c.JSON(http.StatusOK, txs)
}

// POSTCreateTransaction signs a transfer from the node's wallet and relays it to all peers.
func (h *DefaultHandler) POSTCreateTransaction(c echo.Context) (err error) {
	ctx, span := tracing.StartTracing(c.Request().Context(), "POSTCreateTransaction", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if !h.wallet.HasKeys() {
		return h.errorResponse(c, ledger.NewError(wallet.ErrNoKeys, ledger.KindNotReady))
	}

	req, decodeErr := api.DecodeCreateTransactionRequest(c.Request().Body)
	if decodeErr != nil {
		return h.errorResponse(c, malformed(decodeErr))
	}

	sender, signature, signErr := h.wallet.SignTransaction(req.Receiver, req.Amount)
	if signErr != nil {
		h.logger.Error("Failed to sign transaction", slog.String("err", signErr.Error()))
		return c.JSON(http.StatusInternalServerError, api.InfoResponse{Info: "failed to sign transaction"})
	}

	_, createErr := h.node.CreateTransaction(ctx, req.Receiver, sender, signature, req.Amount)
	if createErr != nil {
		return h.errorResponse(c, createErr)
	}

	if h.stats != nil {
		h.stats.transactionsCreated.Inc()
	}

	return c.JSON(http.StatusCreated, api.TransactionResponse{Info: infoTransactionCreated, TransactionSignature: signature})
}

// POSTStoreReceivedTransaction admits a transaction relayed by a peer.
func (h *DefaultHandler) POSTStoreReceivedTransaction(c echo.Context) (err error) {
	ctx, span := tracing.StartTracing(c.Request().Context(), "POSTStoreReceivedTransaction", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if h.stats != nil {
		h.stats.transactionsReceived.Inc()
	}

	tx, decodeErr := api.DecodeTransaction(c.Request().Body)
	if decodeErr != nil {
		return h.errorResponse(c, malformed(decodeErr))
	}

	addErr := h.node.AddTransaction(ctx, ledger.TransactionFromWire(tx))
	if addErr != nil {
		return h.errorResponse(c, addErr)
	}

	return c.JSON(http.StatusCreated, api.TransactionResponse{Info: infoTransactionAdded, TransactionSignature: tx.Signature})
}

// POSTStoreReceivedBlock appends a block relayed by a peer. Blocks ahead of the
// local tip are acknowledged and dropped.
func (h *DefaultHandler) POSTStoreReceivedBlock(c echo.Context) (err error) {
	ctx, span := tracing.StartTracing(c.Request().Context(), "POSTStoreReceivedBlock", h.tracingEnabled, h.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if h.stats != nil {
		h.stats.blocksReceived.Inc()
	}

	block, decodeErr := api.DecodeBlock(c.Request().Body)
	if decodeErr != nil {
		return h.errorResponse(c, malformed(decodeErr))
	}

	addErr := h.node.AddBlock(ctx, ledger.BlockFromWire(block))
	if addErr != nil {
		if errors.Is(addErr, ledger.ErrBlockAheadOfTip) {
			h.logger.Warn("Ignoring block ahead of local tip", slog.Uint64("index", block.Index), slog.Uint64("height", h.node.Height()))
			return c.JSON(http.StatusAccepted, api.InfoResponse{Info: infoBlockIgnored})
		}

		return h.errorResponse(c, addErr)
	}

	return c.JSON(http.StatusCreated, api.InfoResponse{Info: infoBlockAdded})
}

func (h *DefaultHandler) GETBalance(c echo.Context) error {
	identity := c.Param("identity")

	balance, err := h.node.Balance(identity)
	if err != nil {
		return h.errorResponse(c, err)
	}

	if identity == "" {
		identity = h.wallet.PublicKey()
	}

	return c.JSON(http.StatusOK, api.BalanceResponse{Identity: identity, Balance: balance})
}

func (h *DefaultHandler) GETHealth(c echo.Context) error {
	resp := api.HealthResponse{Healthy: true, Height: h.node.Height()}

	err := h.node.Health()
	if err != nil {
		reason := err.Error()
		resp.Healthy = false
		resp.Reason = &reason
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultHandler) errorResponse(c echo.Context, err error) error {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", slog.String("path", c.Path()), slog.String("err", err.Error()))
	}

	return c.JSON(status, api.InfoResponse{Info: err.Error()})
}

func malformed(err error) error {
	return ledger.NewError(errors.Join(ledger.ErrMalformedInput, err), ledger.KindValidation)
}
