package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmd "github.com/powledger/powledger/cmd/powledger/services"
	"github.com/powledger/powledger/config"
	powLogger "github.com/powledger/powledger/internal/logger"
	"github.com/powledger/powledger/internal/version"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Fatalf("failed to run powledger: %v", err)
	}

	os.Exit(0)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "powledger",
		Short:        "Proof of work ledger node",
		Version:      fmt.Sprintf("%s (%s)", version.Version, version.Commit),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			configDir, err := c.Flags().GetString("config")
			if err != nil {
				return err
			}

			dumpConfigFile, err := c.Flags().GetString("dump-config")
			if err != nil {
				return err
			}

			return run(configDir, dumpConfigFile)
		},
	}

	rootCmd.Flags().String("config", "", "directory to look for config.yaml")
	rootCmd.Flags().String("dump-config", "", "dump config to specified file and exit")
	rootCmd.Flags().String("api-address", "", "address the HTTP API listens on")

	err := viper.BindPFlag("api.address", rootCmd.Flags().Lookup("api-address"))
	if err != nil {
		log.Fatal(err)
	}

	rootCmd.AddCommand(newChainCmd())

	return rootCmd
}

func run(configDir string, dumpConfigFile string) error {
	nodeConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := powLogger.NewLogger(nodeConfig.LogLevel, nodeConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting powledger", slog.String("version", version.Version), slog.String("commit", version.Commit))

	go func() {
		if nodeConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", nodeConfig.ProfilerAddr))

			err := http.ListenAndServe(nodeConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if nodeConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", nodeConfig.Prometheus.Endpoint))
			http.Handle(nodeConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(nodeConfig.Prometheus.Addr, nil)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	shutdownCh := make(chan string, 1)

	shutdown, err := cmd.StartNode(logger, nodeConfig, shutdownCh)
	if err != nil {
		return fmt.Errorf("failed to start node: %v", err)
	}

	// setup signal catching
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case reason := <-shutdownCh:
		logger.Info("Received shutdown signal", slog.String("reason", reason))
	case sig := <-signalChan:
		logger.Info("Received shutdown signal", slog.String("reason", sig.String()))
	}

	logger.Info("cleaning up")
	shutdown()

	return nil
}
