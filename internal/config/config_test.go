package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/itemforge/internal/config"
	"github.com/KirkDiggler/itemforge/internal/errors"
)

var allEnv = []string{
	config.EnvGRPCPort, config.EnvHTTPPort, config.EnvRedisAddr, config.EnvRedisPassword,
	config.EnvRedisDB, config.EnvCacheSize, config.EnvCacheTTL, config.EnvSeedDir,
	config.EnvLogLevel, config.EnvLogFormat, config.EnvEnvironment,
}

// clearEnv unsets every variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultGRPCPort, cfg.GRPCPort)
	assert.Equal(t, config.DefaultHTTPPort, cfg.HTTPPort)
	assert.Equal(t, config.DefaultRedisAddr, cfg.RedisAddr)
	assert.Equal(t, config.DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, config.DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.SeedDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvGRPCPort, "9000")
	t.Setenv(config.EnvRedisDB, "3")
	t.Setenv(config.EnvCacheTTL, "90s")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvLogFormat, "JSON")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.GRPCPort)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvHTTPPort, "8181")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		config.EnvHTTPPort+"=9999\n"+config.EnvSeedDir+"=/srv/templates\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.HTTPPort)
	assert.Equal(t, "/srv/templates", cfg.SeedDir)
}

func TestLoadInvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvGRPCPort, "grpc")
	t.Setenv(config.EnvCacheTTL, "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, config.EnvGRPCPort)
	assert.Contains(t, fields, config.EnvCacheTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			GRPCPort:  50051,
			HTTPPort:  8080,
			RedisAddr: "localhost:6379",
			CacheSize: 10,
			LogLevel:  "info",
			LogFormat: "text",
		}
	}

	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{name: "grpc port zero", mutate: func(c *config.Config) { c.GRPCPort = 0 }, field: "grpc_port"},
		{name: "http port too big", mutate: func(c *config.Config) { c.HTTPPort = 70000 }, field: "http_port"},
		{name: "ports collide", mutate: func(c *config.Config) { c.HTTPPort = 50051 }, field: "http_port"},
		{name: "no redis", mutate: func(c *config.Config) { c.RedisAddr = "" }, field: "redis_addr"},
		{name: "negative db", mutate: func(c *config.Config) { c.RedisDB = -1 }, field: "redis_db"},
		{name: "negative cache", mutate: func(c *config.Config) { c.CacheSize = -1 }, field: "cache_size"},
		{name: "negative ttl", mutate: func(c *config.Config) { c.CacheTTL = -time.Second }, field: "cache_ttl"},
		{name: "bad level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, field: "log_level"},
		{name: "bad format", mutate: func(c *config.Config) { c.LogFormat = "xml" }, field: "log_format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			fields := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
			assert.Contains(t, fields, tc.field)
		})
	}

	t.Run("http disabled", func(t *testing.T) {
		cfg := valid()
		cfg.HTTPPort = 0
		assert.NoError(t, cfg.Validate())
	})
}
