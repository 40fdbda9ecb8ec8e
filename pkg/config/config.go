package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	Workers        int    `mapstructure:"workers"`
	WebPort        int    `mapstructure:"web-port"`
	DatabaseDriver string `mapstructure:"database-driver"`
	DatabaseURL    string `mapstructure:"database-url"`
	RedisAddr      string `mapstructure:"redis"`
	MetricsPort    string `mapstructure:"metrics-port"`
	OTLPEndpoint   string `mapstructure:"otlp-endpoint"`
	LogLevel       string `mapstructure:"log-level"`
	LogQueries     bool   `mapstructure:"log-queries"`
	Environment    string `mapstructure:"environment"`
}

// env names that do not follow the flag name.
var envAliases = map[string]string{
	"redis": "REDIS_ADDR",
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Workers:        4,
		WebPort:        8080,
		DatabaseDriver: DriverSQLite,
		DatabaseURL:    "database.db",
		MetricsPort:    "9091",
		LogLevel:       "info",
		Environment:    "development",
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	defaults := GetDefaultConfig()
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)

	flags.Int("workers", defaults.Workers, "number of requests served concurrently, also the pool size")
	flags.Int("web-port", defaults.WebPort, "HTTP listen port")
	flags.String("database-driver", defaults.DatabaseDriver, "sqlite, mysql or postgres")
	flags.String("database-url", defaults.DatabaseURL, "DSN or URL of the user store")
	flags.String("redis", defaults.RedisAddr, "redis address or redis:// URL; in-memory store when empty")
	flags.String("metrics-port", defaults.MetricsPort, "prometheus /metrics port; disabled when empty")
	flags.String("otlp-endpoint", defaults.OTLPEndpoint, "OTLP gRPC collector endpoint")
	flags.String("log-level", defaults.LogLevel, "debug, info, warn or error")
	flags.Bool("log-queries", defaults.LogQueries, "log every SQL statement (sqlite only)")
	flags.String("environment", defaults.Environment, "deployment environment name")

	return flags
}

// Load reads configuration from flags, then the environment (a .env file in
// the working directory is loaded first when present), then defaults.
func Load(name string, args []string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	flags := newFlagSet(name)

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *AppConfig) Validate() error {
	var errs []error

	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}

	if c.WebPort < 1 || c.WebPort > 65535 {
		errs = append(errs, fmt.Errorf("web-port must be in 1..65535, got %d", c.WebPort))
	}

	switch c.DatabaseDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported database-driver %q", c.DatabaseDriver))
	}

	return errors.Join(errs...)
}

func (c *AppConfig) ListenAddr() string {
	return fmt.Sprintf(":%d", c.WebPort)
}
