package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Ark     ArkConfig     `mapstructure:"ark"`
	Esplora EsploraConfig `mapstructure:"esplora"`
	Faucet  FaucetConfig  `mapstructure:"faucet"`
	Store   StoreConfig   `mapstructure:"store"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// ArkConfig points at the Ark daemon that performs all protocol-level work
// (address derivation, signing, settlement rounds).
type ArkConfig struct {
	ServerURL      string        `mapstructure:"server_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// EsploraConfig points at the blockchain indexer used for boarding outputs.
type EsploraConfig struct {
	URL string `mapstructure:"url"`
}

// FaucetConfig controls the regtest faucet integration.
type FaucetConfig struct {
	Command string        `mapstructure:"command"` // faucet binary, e.g. nigiri
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig selects the wallet registry backend.
type StoreConfig struct {
	Driver   string         `mapstructure:"driver"` // memory, postgres
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	BalanceTTL time.Duration `mapstructure:"balance_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// WalletConfig tunes the orchestration layer.
type WalletConfig struct {
	OperationTimeout time.Duration `mapstructure:"operation_timeout"` // full op incl. protocol round-trips
	LockTimeout      time.Duration `mapstructure:"lock_timeout"`      // bound on per-wallet lock waits
	SeedCipherKey    string        `mapstructure:"seed_cipher_key"`   // 32-byte hex key for seed-at-rest encryption
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ARK_.
// Nested keys use underscore: ARK_SERVER_PORT, ARK_STORE_DRIVER, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("ark.server_url", "http://localhost:7070")
	v.SetDefault("ark.request_timeout", "30s")
	v.SetDefault("esplora.url", "http://localhost:3000")
	v.SetDefault("faucet.command", "nigiri")
	v.SetDefault("faucet.timeout", "15s")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.postgres.host", "localhost")
	v.SetDefault("store.postgres.port", 5432)
	v.SetDefault("store.postgres.user", "postgres")
	v.SetDefault("store.postgres.password", "postgres")
	v.SetDefault("store.postgres.dbname", "arkane_wallet")
	v.SetDefault("store.postgres.sslmode", "disable")
	v.SetDefault("store.postgres.max_conns", 10)
	v.SetDefault("store.postgres.min_conns", 2)
	v.SetDefault("store.postgres.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.balance_ttl", "5s")
	v.SetDefault("wallet.operation_timeout", "90s")
	v.SetDefault("wallet.lock_timeout", "30s")
	v.SetDefault("wallet.seed_cipher_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ARK_STORE_DRIVER -> store.driver
	v.SetEnvPrefix("ARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
