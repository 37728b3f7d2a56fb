package config

import (
	"time"
)

func getDefaultNodeConfig() *NodeConfig {
	return &NodeConfig{
		LogLevel:     "INFO",
		LogFormat:    "text",
		ProfilerAddr: "",
		Prometheus:   getDefaultPrometheusConfig(),
		Tracing:      getDefaultTracingConfig(),
		API:          getDefaultAPIConfig(),
		Ledger:       getDefaultLedgerConfig(),
		Miner:        getDefaultMinerConfig(),
		Peers:        getDefaultPeersConfig(),
		Wallet:       getDefaultWalletConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Enabled:  false,
		Endpoint: "/metrics",
		Addr:     ":2112",
	}
}

func getDefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		Enabled:  false,
		DialAddr: "",
		Sample:   100,
	}
}

func getDefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Address:             "localhost:5000",
		RequestExtendedLogs: false,
	}
}

func getDefaultLedgerConfig() *LedgerConfig {
	return &LedgerConfig{
		Difficulty:   2,
		MiningReward: 10,
	}
}

func getDefaultMinerConfig() *MinerConfig {
	return &MinerConfig{
		Enabled:         false,
		Interval:        30 * time.Second,
		MineEmptyBlocks: false,
	}
}

func getDefaultPeersConfig() *PeersConfig {
	return &PeersConfig{
		Addresses:             []string{},
		RequestTimeout:        5 * time.Second,
		MaxConcurrentRequests: 8,
	}
}

func getDefaultWalletConfig() *WalletConfig {
	return &WalletConfig{
		GenerateOnStart: false,
		KeyBits:         2048,
	}
}
