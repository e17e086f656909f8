package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/bibbank/ibankit/pkg/auth"
	"github.com/bibbank/ibankit/pkg/observability"
	"github.com/bibbank/ibankit/pkg/tlsutil"
)

// Config holds all configuration for the validation service.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"validation-service"`

	// gRPC server port
	GRPCPort int `envconfig:"GRPC_PORT" default:"8090"`
	// HTTP metrics/health port
	HTTPPort int `envconfig:"HTTP_PORT" default:"9090"`

	GRPCReflection  bool          `envconfig:"GRPC_REFLECTION" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// AllowQRIBAN is the default for requests that do not set it.
	AllowQRIBAN bool `envconfig:"ALLOW_QR_IBAN" default:"true"`
	// CountryFile is an optional YAML file of country overrides applied at
	// start-up.
	CountryFile string `envconfig:"COUNTRY_FILE"`

	JWT     JWTConfig                   `envconfig:"-"`
	TLS     tlsutil.ServerConfig        `envconfig:"-"`
	Tracing observability.TracingConfig `envconfig:"-"`
	Sentry  observability.SentryConfig  `envconfig:"-"`
}

// JWTConfig selects how incoming tokens are verified. The public key is
// preferred; the secret is a development fallback.
type JWTConfig struct {
	Issuer        string `envconfig:"JWT_ISSUER" default:"ibankit-gateway"`
	PublicKey     string `envconfig:"JWT_PUBLIC_KEY"`
	PublicKeyFile string `envconfig:"JWT_PUBLIC_KEY_FILE"`
	Secret        string `envconfig:"JWT_SECRET" default:"dev-secret-change-in-prod"`
}

// TokenConfig resolves the key source into an auth.TokenConfig.
func (c JWTConfig) TokenConfig() (auth.TokenConfig, error) {
	cfg := auth.TokenConfig{Issuer: c.Issuer}
	switch {
	case c.PublicKey != "":
		cfg.PublicKeyPEM = c.PublicKey
	case c.PublicKeyFile != "":
		key, err := auth.LoadKeyFromFile(c.PublicKeyFile)
		if err != nil {
			return auth.TokenConfig{}, fmt.Errorf("load JWT public key: %w", err)
		}
		cfg.PublicKeyPEM = key
	default:
		cfg.Secret = c.Secret
	}
	return cfg, nil
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
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
	if err := envconfig.Process("", &cfg.TLS); err != nil {
		return Config{}, fmt.Errorf("failed to process TLS config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Tracing); err != nil {
		return Config{}, fmt.Errorf("failed to process tracing config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Sentry); err != nil {
		return Config{}, fmt.Errorf("failed to process sentry config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks required configuration values.
func (c Config) Validate() error {
	for name, port := range map[string]int{"GRPC_PORT": c.GRPCPort, "HTTP_PORT": c.HTTPPort} {
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid %s: %d", name, port)
		}
	}
	if c.GRPCPort == c.HTTPPort {
		return fmt.Errorf("GRPC_PORT and HTTP_PORT must differ, both are %d", c.GRPCPort)
	}
	if c.ServiceName == "" {
		return errors.New("service name is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("invalid trace sample rate: %v", c.Tracing.SampleRate)
	}
	return nil
}
