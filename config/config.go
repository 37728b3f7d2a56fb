package config

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
)

type NodeConfig struct {
	LogLevel     string            `mapstructure:"logLevel"`
	LogFormat    string            `mapstructure:"logFormat"`
	ProfilerAddr string            `mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig `mapstructure:"prometheus"`
	Tracing      *TracingConfig    `mapstructure:"tracing"`
	API          *APIConfig        `mapstructure:"api"`
	Ledger       *LedgerConfig     `mapstructure:"ledger"`
	Miner        *MinerConfig      `mapstructure:"miner"`
	Peers        *PeersConfig      `mapstructure:"peers"`
	Wallet       *WalletConfig     `mapstructure:"wallet"`
}

type PrometheusConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Addr     string `mapstructure:"addr"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Enabled && p.Addr != "" && p.Endpoint != ""
}

type TracingConfig struct {
	Enabled            bool                 `mapstructure:"enabled"`
	DialAddr           string               `mapstructure:"dialAddr"`
	Sample             int                  `mapstructure:"sample"`
	Attributes         map[string]string    `mapstructure:"attributes"`
	KeyValueAttributes []attribute.KeyValue `mapstructure:"-"`
}

func (c *NodeConfig) IsTracingEnabled() bool {
	return c.Tracing != nil && c.Tracing.Enabled
}

type APIConfig struct {
	Address             string `mapstructure:"address"`
	RequestExtendedLogs bool   `mapstructure:"requestExtendedLogs"`
}

type LedgerConfig struct {
	Difficulty   int     `mapstructure:"difficulty"`
	MiningReward float64 `mapstructure:"miningReward"`
}

type MinerConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Interval        time.Duration `mapstructure:"interval"`
	MineEmptyBlocks bool          `mapstructure:"mineEmptyBlocks"`
}

type PeersConfig struct {
	Addresses             []string      `mapstructure:"addresses"`
	RequestTimeout        time.Duration `mapstructure:"requestTimeout"`
	MaxConcurrentRequests int           `mapstructure:"maxConcurrentRequests"`
}

type WalletConfig struct {
	GenerateOnStart bool `mapstructure:"generateOnStart"`
	KeyBits         int  `mapstructure:"keyBits"`
}
