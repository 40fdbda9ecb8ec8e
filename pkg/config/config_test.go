package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userapp/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("userapi", nil)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 8080, cfg.WebPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "database.db", cfg.DatabaseURL)
	assert.Equal(t, "9091", cfg.MetricsPort)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoad_Flags(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("userapi", []string{
		"--workers=16",
		"--web-port=9000",
		"--database-driver=postgres",
		"--database-url=postgres://localhost/users",
		"--redis=localhost:6379",
	})

	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
	assert.Equal(t, 9000, cfg.WebPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://localhost/users", cfg.DatabaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORKERS", "8")
	t.Setenv("WEB_PORT", "7070")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_URL", "app:secret@tcp(db:3306)/users")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := config.Load("userapi", nil)

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 7070, cfg.WebPort)
	assert.Equal(t, "mysql", cfg.DatabaseDriver)
	assert.Equal(t, "app:secret@tcp(db:3306)/users", cfg.DatabaseURL)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORKERS", "8")

	cfg, err := config.Load("userapi", []string{"--workers=2"})

	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestValidate(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Workers = 0
	cfg.WebPort = 70000
	cfg.DatabaseDriver = "oracle"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be positive")
	assert.Contains(t, err.Error(), "web-port must be in 1..65535")
	assert.Contains(t, err.Error(), `unsupported database-driver "oracle"`)
}

func TestLoad_UnknownFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load("userapi", []string{"--nope"})

	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := config.NewLogger("userapi", "debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = config.NewLogger("userapi", "loud")
	assert.Error(t, err)
}
