package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SentryConfig configures panic reporting.
type SentryConfig struct {
	DSN         string `envconfig:"SENTRY_DSN" default:""`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
	Release     string `envconfig:"SERVICE_VERSION" default:"dev"`
}

// InitSentry initializes the Sentry client when a DSN is configured. The
// returned function flushes buffered events and is safe to call either way.
func InitSentry(cfg SentryConfig) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize sentry: %w", err)
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// RecoveryUnaryInterceptor turns a handler panic into codes.Internal, logs it
// and reports it to Sentry. Without a configured Sentry client the report is
// a no-op.
func RecoveryUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetTag("grpc.method", info.FullMethod)
				hub.RecoverWithContext(ctx, r)

				logger.Error("panic in gRPC handler", "method", info.FullMethod, "panic", fmt.Sprint(r))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
