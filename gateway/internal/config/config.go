package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/bibbank/ibankit/pkg/auth"
	"github.com/bibbank/ibankit/pkg/observability"
	"github.com/bibbank/ibankit/pkg/tlsutil"
)

// Config holds all configuration for the API gateway.
type Config struct {
	HTTPPort       int           `envconfig:"HTTP_PORT" default:"8080"`
	ValidationAddr string        `envconfig:"VALIDATION_ADDR" default:"localhost:8090"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`

	// RateLimit is the sustained requests per second allowed per client.
	RateLimit int `envconfig:"RATE_LIMIT" default:"100"`
	// RateBurst defaults to RateLimit when zero.
	RateBurst int `envconfig:"RATE_BURST" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	JWT           JWTConfig                   `envconfig:"-"`
	ValidationTLS tlsutil.ClientConfig        `envconfig:"-"`
	Tracing       observability.TracingConfig `envconfig:"-"`
}

// JWTConfig selects the gateway's signing key. The gateway is the token
// issuer, so it prefers a private key and falls back to a shared secret.
type JWTConfig struct {
	Issuer         string        `envconfig:"JWT_ISSUER" default:"ibankit-gateway"`
	PrivateKey     string        `envconfig:"JWT_PRIVATE_KEY"`
	PrivateKeyFile string        `envconfig:"JWT_PRIVATE_KEY_FILE"`
	Secret         string        `envconfig:"JWT_SECRET" default:"dev-secret-change-in-prod"`
	TokenTTL       time.Duration `envconfig:"JWT_TOKEN_TTL" default:"24h"`
}

// TokenConfig resolves the key source into an auth.TokenConfig.
func (c JWTConfig) TokenConfig() (auth.TokenConfig, error) {
	cfg := auth.TokenConfig{Issuer: c.Issuer, TTL: c.TokenTTL}
	switch {
	case c.PrivateKey != "":
		cfg.PrivateKeyPEM = c.PrivateKey
	case c.PrivateKeyFile != "":
		key, err := auth.LoadKeyFromFile(c.PrivateKeyFile)
		if err != nil {
			return auth.TokenConfig{}, fmt.Errorf("load JWT private key: %w", err)
		}
		cfg.PrivateKeyPEM = key
	default:
		cfg.Secret = c.Secret
	}
	return cfg, nil
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := envconfig.Process("", &cfg.JWT); err != nil {
		return Config{}, fmt.Errorf("failed to process JWT config: %w", err)
	}
	if err := envconfig.Process("", &cfg.ValidationTLS); err != nil {
		return Config{}, fmt.Errorf("failed to process TLS config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Tracing); err != nil {
		return Config{}, fmt.Errorf("failed to process tracing config: %w", err)
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = cfg.RateLimit
	}

	return cfg, cfg.Validate()
}

// Validate checks required configuration values.
func (c Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.ValidationAddr == "" {
		return errors.New("VALIDATION_ADDR is required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("RATE_BURST must not be negative, got %d", c.RateBurst)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
