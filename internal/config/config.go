package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported ledger backends
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const (
	minSecretKeyLength = 32
	defaultSQLiteFile  = "auction.db"
)

// Config stores all configuration of the application.
// The values are read by viper from an optional env file and environment variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	DatabaseDriver     string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseDSN        string        `mapstructure:"DATABASE_DSN"`
	TokenSecretKey     string        `mapstructure:"TOKEN_SECRET_KEY"`
	AuthCookieName     string        `mapstructure:"AUTH_COOKIE_NAME"`
	EventSnapshotSize  int           `mapstructure:"EVENT_SNAPSHOT_SIZE"`
	SlotCount          int           `mapstructure:"SLOT_COUNT"`
	LedgerWriteTimeout time.Duration `mapstructure:"LEDGER_WRITE_TIMEOUT"`
	AllowedOrigins     []string      `mapstructure:"ALLOWED_ORIGINS"`
	AdminKey           string        `mapstructure:"ADMIN_KEY"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	BiddingEnabled     bool          `mapstructure:"BIDDING_ENABLED"`
}

// Load reads configuration from the env file at path (skipped when empty or missing)
// and from environment variables, which take precedence.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":" + v.GetString("PORT")
	}
	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	if cfg.DatabaseDriver == DriverSQLite && cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultSQLiteFile
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("TOKEN_SECRET_KEY", "")
	v.SetDefault("AUTH_COOKIE_NAME", "sytyAuth")
	v.SetDefault("EVENT_SNAPSHOT_SIZE", 30)
	v.SetDefault("SLOT_COUNT", 0)
	v.SetDefault("LEDGER_WRITE_TIMEOUT", "5s")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BIDDING_ENABLED", true)
}

func validate(cfg Config) error {
	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseDSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if len(cfg.TokenSecretKey) < minSecretKeyLength {
		return fmt.Errorf("config: TOKEN_SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	if cfg.EventSnapshotSize <= 0 {
		return fmt.Errorf("config: EVENT_SNAPSHOT_SIZE must be positive")
	}
	if cfg.SlotCount < 0 {
		return fmt.Errorf("config: SLOT_COUNT must not be negative")
	}
	if cfg.LedgerWriteTimeout <= 0 {
		return fmt.Errorf("config: LEDGER_WRITE_TIMEOUT must be positive")
	}
	return nil
}
