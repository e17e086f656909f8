package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/bibbank/ibankit/gateway/internal/config"
	"github.com/bibbank/ibankit/gateway/internal/handler"
	"github.com/bibbank/ibankit/gateway/internal/middleware"
	"github.com/bibbank/ibankit/gateway/internal/proxy"
	"github.com/bibbank/ibankit/pkg/auth"
	"github.com/bibbank/ibankit/pkg/observability"
	"github.com/bibbank/ibankit/pkg/tlsutil"
)

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "token" {
		err = issueToken(os.Args[2:])
	} else {
		err = serve()
	}
	if err != nil {
		slog.Error("gateway exited", "error", err)
		os.Exit(1)
	}
}

// issueToken prints a signed client token. The gateway is the token issuer.
func issueToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	scopes := fs.String("scopes", auth.ScopeAdmin, "comma-separated scopes")
	client := fs.String("client", "", "client ID (random when empty)")
	tenant := fs.String("tenant", "", "tenant ID (random when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tokens, err := newTokenService(cfg)
	if err != nil {
		return err
	}

	clientID, err := parseOrNew(*client)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	tenantID, err := parseOrNew(*tenant)
	if err != nil {
		return fmt.Errorf("tenant: %w", err)
	}
	token, err := tokens.Issue(clientID, tenantID, strings.Split(*scopes, ","))
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func serve() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "gateway",
	})
	logger.Info("starting gateway", "port", cfg.HTTPPort)

	shutdownTracing, err := observability.InitTracing(ctx, "gateway", cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		_ = shutdownTracing(flushCtx)
	}()

	tokens, err := newTokenService(cfg)
	if err != nil {
		return err
	}

	// Connections are lazy; a backend that is down only fails readiness.
	creds, err := tlsutil.ClientCredentials(cfg.ValidationTLS)
	if err != nil {
		return fmt.Errorf("load validation TLS credentials: %w", err)
	}
	validationConn, err := proxy.Dial("validation-service", cfg.ValidationAddr, proxy.ValidationHealthService, logger,
		grpc.WithTransportCredentials(creds),
	)
	if err != nil {
		return fmt.Errorf("connect to validation service: %w", err)
	}
	defer validationConn.Close()

	rateLimiter := middleware.NewPerClientRateLimiter(cfg.RateLimit, cfg.RateBurst)

	router := handler.NewRouter(&handler.Proxies{
		Validation: proxy.NewValidationProxy(validationConn, logger),
	}, handler.RouterOptions{
		Logger:         logger,
		Verifier:       tokens,
		RateLimiter:    rateLimiter,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := rateLimiter.Evict(10 * time.Minute); n > 0 {
					logger.Debug("evicted idle rate limit buckets", "count", n)
				}
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("gateway stopped")
	return nil
}

func newTokenService(cfg config.Config) (*auth.TokenService, error) {
	tokenCfg, err := cfg.JWT.TokenConfig()
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(tokenCfg)
	if err != nil {
		return nil, fmt.Errorf("init token service: %w", err)
	}
	return tokens, nil
}

func parseOrNew(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}
