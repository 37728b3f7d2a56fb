package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/attribute"

	"github.com/powledger/powledger/config"
	apiHandler "github.com/powledger/powledger/internal/api/handler"
	"github.com/powledger/powledger/internal/broadcaster"
	"github.com/powledger/powledger/internal/ledger/store/memory"
	powLogger "github.com/powledger/powledger/internal/logger"
	"github.com/powledger/powledger/internal/miner"
	"github.com/powledger/powledger/internal/node"
	"github.com/powledger/powledger/internal/node_client"
	"github.com/powledger/powledger/internal/pool"
	"github.com/powledger/powledger/internal/signer"
	"github.com/powledger/powledger/internal/version"
	"github.com/powledger/powledger/internal/wallet"
	"github.com/powledger/powledger/pkg/tracing"
)

const serviceName = "powledger"

// StartNode wires the ledger node, its peer broadcaster, the optional
// background miner and the HTTP API. The returned function stops all of them.
func StartNode(logger *slog.Logger, nodeConfig *config.NodeConfig, shutdownCh chan<- string) (func(), error) {
	logger = logger.With(slog.String("service", "node"))
	logger.Info("Starting")

	var (
		echoServer   *echo.Echo
		peerBcaster  *broadcaster.PeerBroadcaster
		blockMiner   *miner.Miner
		nodeStats    *node.Stats
		handlerStats *apiHandler.Stats
		err          error
	)

	shutdownFns := make([]func(), 0)
	stopFn := func() {
		logger.Info("Shutting down node")
		disposeNode(logger, echoServer, blockMiner, peerBcaster, nodeStats, handlerStats, shutdownFns)
		logger.Info("Shutdown complete")
	}

	var attributes []attribute.KeyValue
	if nodeConfig.IsTracingEnabled() {
		cleanup, err := tracing.Enable(logger, serviceName, version.Version, nodeConfig.Tracing.DialAddr, nodeConfig.Tracing.Sample)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			shutdownFns = append(shutdownFns, cleanup)
		}

		attributes = nodeConfig.Tracing.KeyValueAttributes
		hostname, err := os.Hostname()
		if err == nil {
			attributes = append(attributes, attribute.String("hostname", hostname))
		}
	}

	rsaSigner := signer.New(signer.WithKeyBits(nodeConfig.Wallet.KeyBits))
	nodeWallet := wallet.New(rsaSigner)

	if nodeConfig.Wallet.GenerateOnStart {
		_, _, err = nodeWallet.EnsureKeys()
		if err != nil {
			stopFn()
			return nil, err
		}
	}

	peerBcaster, err = broadcaster.New(
		&http.Client{},
		logger,
		broadcaster.WithRequestTimeout(nodeConfig.Peers.RequestTimeout),
		broadcaster.WithMaxConcurrency(nodeConfig.Peers.MaxConcurrentRequests),
	)
	if err != nil {
		stopFn()
		return nil, err
	}

	nodeOpts := []node.Option{
		node.WithLogger(logger),
		node.WithDifficulty(nodeConfig.Ledger.Difficulty),
		node.WithMiningReward(nodeConfig.Ledger.MiningReward),
		node.WithPeers(nodeConfig.Peers.Addresses...),
	}

	apiOpts := make([]apiHandler.Option, 0)

	if nodeWallet.HasKeys() {
		nodeOpts = append(nodeOpts, node.WithIdentity(nodeWallet.PublicKey()))
	}

	if nodeConfig.Prometheus.IsEnabled() {
		nodeStats, err = node.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}
		nodeOpts = append(nodeOpts, node.WithStats(nodeStats))

		handlerStats, err = apiHandler.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}
		apiOpts = append(apiOpts, apiHandler.WithStats(handlerStats))
	}

	if nodeConfig.IsTracingEnabled() {
		nodeOpts = append(nodeOpts, node.WithTracer(attributes...))
		apiOpts = append(apiOpts, apiHandler.WithTracer(attributes...))
	}

	ledgerNode := node.New(memory.New(), pool.New(), rsaSigner, peerBcaster, nodeOpts...)

	if nodeConfig.Miner.Enabled {
		blockMiner = miner.New(ledgerNode, logger,
			miner.WithInterval(nodeConfig.Miner.Interval),
			miner.WithMineEmptyBlocks(nodeConfig.Miner.MineEmptyBlocks),
		)
		blockMiner.Start()
	}

	probeCtx, cancelProbe := context.WithCancel(context.Background())
	shutdownFns = append(shutdownFns, cancelProbe)
	go probePeers(probeCtx, logger, nodeConfig, attributes)

	echoServer = setAPIEcho(logger, nodeConfig.API)
	apiHandler.RegisterHandlers(echoServer, apiHandler.NewDefault(logger, ledgerNode, nodeWallet, apiOpts...))

	go func() {
		logger.Info("Starting API server", slog.String("address", nodeConfig.API.Address))
		err := echoServer.Start(nodeConfig.API.Address)
		if err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("API http server closed")
				return
			}

			logger.Error("Failed to start API server", slog.String("err", err.Error()))
			shutdownCh <- "API server failed"
		}
	}()

	return stopFn, nil
}

// probePeers reports the health of the configured peers once at startup. An
// unreachable peer is only logged, broadcasts to it are still attempted.
func probePeers(ctx context.Context, logger *slog.Logger, nodeConfig *config.NodeConfig, attributes []attribute.KeyValue) {
	for _, peer := range nodeConfig.Peers.Addresses {
		opts := []func(*node_client.NodeClient){
			node_client.WithLogger(logger),
			node_client.WithTimeout(nodeConfig.Peers.RequestTimeout),
		}
		if nodeConfig.IsTracingEnabled() {
			opts = append(opts, node_client.WithTracer(attributes...))
		}

		health, err := node_client.New(peer, opts...).GetHealth(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Peer unreachable", slog.String("peer", peer), slog.String("err", err.Error()))
			continue
		}

		if !health.Healthy {
			logger.Warn("Peer unhealthy", slog.String("peer", peer), slog.Uint64("height", health.Height))
			continue
		}

		logger.Info("Peer healthy", slog.String("peer", peer), slog.Uint64("height", health.Height))
	}
}

func setAPIEcho(logger *slog.Logger, cfg *config.APIConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())

	// peers and browser clients may call from any origin
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqCtx := context.WithValue(req.Context(), powLogger.EventIDField, uuid.New().String())
			c.SetRequest(req.WithContext(reqCtx))

			return next(c)
		}
	})

	e.Use(otelecho.Middleware("api-server"))

	e.Use(logRequestMiddleware(logger, cfg.RequestExtendedLogs))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "powledger_api",
		HistogramOptsFunc: func(opts prometheus.HistogramOpts) prometheus.HistogramOpts {
			if opts.Name == "request_duration_seconds" {
				opts.Buckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}
			}
			return opts
		},
	}))

	return e
}

func logRequestMiddleware(logger *slog.Logger, extendLog bool) echo.MiddlewareFunc {
	cfg := echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()

			attrs := []slog.Attr{
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			}
			if extendLog {
				attrs = append(attrs,
					slog.String("verb", v.Method),
					slog.String("remote_ip", v.RemoteIP),
					slog.String("latency", v.Latency.String()),
				)
			}

			if v.Error == nil {
				logger.LogAttrs(ctx, slog.LevelInfo, "REQUEST", attrs...)
				return nil
			}

			attrs = append(attrs, slog.String("err", v.Error.Error()))
			logger.LogAttrs(ctx, slog.LevelError, "REQUEST_ERROR", attrs...)

			return nil
		},
	}

	if extendLog {
		cfg.LogMethod = true
		cfg.LogRemoteIP = true
		cfg.LogLatency = true
	}

	return echomiddleware.RequestLoggerWithConfig(cfg)
}

func disposeNode(logger *slog.Logger, echoServer *echo.Echo, blockMiner *miner.Miner, peerBcaster *broadcaster.PeerBroadcaster,
	nodeStats *node.Stats, handlerStats *apiHandler.Stats, shutdownFns []func(),
) {
	if blockMiner != nil {
		blockMiner.GracefulStop()
	}

	if echoServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := echoServer.Shutdown(ctx); err != nil {
			logger.Error("Failed to close API echo server", slog.String("err", err.Error()))
		}
	}

	if peerBcaster != nil {
		peerBcaster.GracefulStop()
	}

	if nodeStats != nil {
		nodeStats.UnregisterStats()
	}

	if handlerStats != nil {
		handlerStats.UnregisterStats()
	}

	for _, fn := range shutdownFns {
		fn()
	}
}
