package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Wallet daemon
	WalletRPCURL      string        `env:"WALLET_RPC_URL"      envDefault:"http://localhost:15151"`
	WalletRPCUser     string        `env:"WALLET_RPC_USER"     envDefault:""`
	WalletRPCPassword string        `env:"WALLET_RPC_PASSWORD" envDefault:""`
	WalletRPCTimeout  time.Duration `env:"WALLET_RPC_TIMEOUT"  envDefault:"30s"`
	WalletPassphrase  string        `env:"WALLET_PASSPHRASE"   envDefault:""`

	// Flow tunables (duff amounts)
	TxFee                 int64  `env:"TX_FEE_DUFFS"               envDefault:"10000"`
	RequiredConfirmations int    `env:"REQUIRED_CONFIRMATIONS"     envDefault:"6"`
	HighBalanceMark       int64  `env:"HIGH_BALANCE_WARNING_DUFFS" envDefault:"100000000000"`
	ExplorerURL           string `env:"EXPLORER_URL"               envDefault:"https://chainz.cryptoid.info/tao/tx.dws?"`

	// Chat gateway (optional - leave empty to log notifications instead)
	RedisURL           string        `env:"REDIS_URL"            envDefault:""`
	RosterSyncInterval time.Duration `env:"ROSTER_SYNC_INTERVAL" envDefault:"5m"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
