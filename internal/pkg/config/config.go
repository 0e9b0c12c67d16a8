package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage backends accepted by STORE_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Connectivity modes accepted by CONNECTIVITY_MODE.
const (
	ConnectivityProbe  = "probe"
	ConnectivityManual = "manual"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Store        StoreConfig
	SQLite       SQLiteConfig
	Mongo        MongoConfig
	Redis        RedisConfig
	Sync         SyncConfig
	Connectivity ConnectivityConfig
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=file"`
	Dir     string `env:"STORE_DIR,     default=./data"`
	Key     string `env:"STORE_KEY,     default=@shipments"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=./data/shipments.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shipment_sync"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type SyncConfig struct {
	Endpoint        string        `env:"SYNC_ENDPOINT,         default=https://jsonplaceholder.typicode.com/posts"`
	UserID          int           `env:"SYNC_USER_ID,          default=1"`
	DeliveryTimeout time.Duration `env:"SYNC_DELIVERY_TIMEOUT, default=10s"`
	Interval        time.Duration `env:"SYNC_INTERVAL,         default=0s"`
	// Ledger enables the Redis delivery ledger (uses the Redis settings).
	Ledger    bool          `env:"SYNC_LEDGER,     default=false"`
	LedgerTTL time.Duration `env:"SYNC_LEDGER_TTL, default=168h"`
}

type ConnectivityConfig struct {
	Mode          string        `env:"CONNECTIVITY_MODE,      default=probe"`
	ProbeURL      string        `env:"CONNECTIVITY_PROBE_URL, default=https://clients3.google.com/generate_204"`
	Interval      time.Duration `env:"CONNECTIVITY_INTERVAL,  default=5s"`
	Timeout       time.Duration `env:"CONNECTIVITY_TIMEOUT,   default=3s"`
	InitialOnline bool          `env:"CONNECTIVITY_INITIAL_ONLINE, default=false"`
}

// IsDevelopment reports whether the service runs with developer ergonomics
// (pretty logs).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// MustLoad is Load that panics on error, for use in main.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMongo, BackendMemory:
	default:
		return fmt.Errorf("config: unsupported STORE_BACKEND %q", c.Store.Backend)
	}
	switch c.Connectivity.Mode {
	case ConnectivityProbe, ConnectivityManual:
	default:
		return fmt.Errorf("config: unsupported CONNECTIVITY_MODE %q", c.Connectivity.Mode)
	}
	if c.Sync.Endpoint == "" {
		return fmt.Errorf("config: SYNC_ENDPOINT is required")
	}
	if c.Sync.Interval < 0 {
		return fmt.Errorf("config: SYNC_INTERVAL must not be negative")
	}
	return nil
}
