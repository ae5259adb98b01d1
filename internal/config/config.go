// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/itemforge/internal/errors"
)

// Environment variable names
const (
	EnvGRPCPort      = "ITEMFORGE_GRPC_PORT"
	EnvHTTPPort      = "ITEMFORGE_HTTP_PORT"
	EnvRedisAddr     = "ITEMFORGE_REDIS_ADDR"
	EnvRedisPassword = "ITEMFORGE_REDIS_PASSWORD"
	EnvRedisDB       = "ITEMFORGE_REDIS_DB"
	EnvCacheSize     = "ITEMFORGE_CACHE_SIZE"
	EnvCacheTTL      = "ITEMFORGE_CACHE_TTL"
	EnvSeedDir       = "ITEMFORGE_SEED_DIR"
	EnvLogLevel      = "ITEMFORGE_LOG_LEVEL"
	EnvLogFormat     = "ITEMFORGE_LOG_FORMAT"
	EnvEnvironment   = "ITEMFORGE_ENV"
)

// Defaults
const (
	DefaultGRPCPort  = 50051
	DefaultHTTPPort  = 8080
	DefaultRedisAddr = "localhost:6379"
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultEnv       = "dev"

	// RedisAddrEmbedded runs an in-process store instead of dialing Redis
	RedisAddrEmbedded = "embedded"
)

// Config holds the server configuration
type Config struct {
	GRPCPort int
	HTTPPort int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheSize int
	CacheTTL  time.Duration

	// SeedDir holds YAML templates loaded at startup; empty disables seeding
	SeedDir string

	LogLevel    string
	LogFormat   string
	Environment string
}

// Load reads the configuration from the environment. Each env file that
// exists is loaded first without overriding variables already set; with no
// files given, ".env" in the working directory is tried.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load env file "+f)
		}
	}

	vb := errors.NewValidationBuilder()

	cfg := &Config{
		GRPCPort:      getInt(vb, EnvGRPCPort, DefaultGRPCPort),
		HTTPPort:      getInt(vb, EnvHTTPPort, DefaultHTTPPort),
		RedisAddr:     getEnv(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: getEnv(EnvRedisPassword, ""),
		RedisDB:       getInt(vb, EnvRedisDB, 0),
		CacheSize:     getInt(vb, EnvCacheSize, DefaultCacheSize),
		CacheTTL:      getDuration(vb, EnvCacheTTL, DefaultCacheTTL),
		SeedDir:       getEnv(EnvSeedDir, ""),
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:   getEnv(EnvEnvironment, DefaultEnv),
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("grpc_port", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	// 0 disables the HTTP server
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		vb.Fieldf("http_port", "must be between 0 and 65535, got %d", c.HTTPPort)
	}
	if c.HTTPPort != 0 && c.HTTPPort == c.GRPCPort {
		vb.Field("http_port", "must differ from grpc_port")
	}
	if c.RedisAddr == "" {
		vb.RequiredField("redis_addr")
	}
	if c.RedisDB < 0 {
		vb.Field("redis_db", "must not be negative")
	}
	if c.CacheSize < 0 {
		vb.Field("cache_size", "must not be negative")
	}
	if c.CacheTTL < 0 {
		vb.Field("cache_ttl", "must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		vb.Fieldf("log_format", "unknown format %q", c.LogFormat)
	}

	return vb.Build()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(vb *errors.ValidationBuilder, key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		vb.Fieldf(key, "invalid integer %q", raw)
		return defaultValue
	}
	return v
}

func getDuration(vb *errors.ValidationBuilder, key string, defaultValue time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		vb.Fieldf(key, "invalid duration %q", raw)
		return defaultValue
	}
	return v
}
