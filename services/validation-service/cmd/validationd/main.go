package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bibbank/ibankit/pkg/auth"
	"github.com/bibbank/ibankit/pkg/iban"
	"github.com/bibbank/ibankit/pkg/observability"
	"github.com/bibbank/ibankit/pkg/tlsutil"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/usecase"
	"github.com/bibbank/ibankit/services/validation-service/internal/infrastructure/config"
	"github.com/bibbank/ibankit/services/validation-service/internal/infrastructure/countryfile"
	"github.com/bibbank/ibankit/services/validation-service/internal/infrastructure/metrics"
	grpcPresentation "github.com/bibbank/ibankit/services/validation-service/internal/presentation/grpc"
	"github.com/bibbank/ibankit/services/validation-service/internal/presentation/rest"
)

func main() {
	if err := run(); err != nil {
		slog.Error("validation service exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	logger.Info("starting validation service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.ServiceName, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	flushSentry, err := observability.InitSentry(cfg.Sentry)
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer flushSentry()

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		WithRuntime: true,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	// Country catalog. Overrides are applied once, before any request is served.
	catalog := iban.Default
	if cfg.CountryFile != "" {
		file, loadErr := countryfile.Load(cfg.CountryFile)
		if loadErr != nil {
			return fmt.Errorf("load country file: %w", loadErr)
		}
		n, applyErr := countryfile.Apply(catalog, file, logger)
		if applyErr != nil {
			return fmt.Errorf("apply country file: %w", applyErr)
		}
		logger.Info("applied country overrides", "file", cfg.CountryFile, "countries", n)
	}

	recorder, err := metrics.NewRecorder(meterProvider)
	if err != nil {
		return fmt.Errorf("init validation metrics: %w", err)
	}

	// Use cases.
	validateIBANUC := usecase.NewValidateIBANUseCase(catalog, recorder, cfg.AllowQRIBAN, logger)
	validateBBANUC := usecase.NewValidateBBANUseCase(catalog, recorder, logger)
	composeIBANUC := usecase.NewComposeIBANUseCase(catalog, recorder, logger)
	extractIBANUC := usecase.NewExtractIBANUseCase(catalog, recorder, cfg.AllowQRIBAN, logger)
	validateBICUC := usecase.NewValidateBICUseCase(catalog, recorder, logger)
	listCountriesUC := usecase.NewListCountriesUseCase(catalog, logger)
	screenPaymentUC := usecase.NewScreenPaymentMessageUseCase(catalog, recorder, cfg.AllowQRIBAN, logger)

	tokenCfg, err := cfg.JWT.TokenConfig()
	if err != nil {
		return err
	}
	verifier, err := auth.NewTokenService(tokenCfg)
	if err != nil {
		return fmt.Errorf("init token verifier: %w", err)
	}

	handler := grpcPresentation.NewValidationHandler(
		validateIBANUC,
		validateBBANUC,
		composeIBANUC,
		extractIBANUC,
		validateBICUC,
		listCountriesUC,
		screenPaymentUC,
	)
	creds, err := tlsutil.ServerCredentials(cfg.TLS)
	if err != nil {
		return fmt.Errorf("load gRPC TLS credentials: %w", err)
	}
	grpcServer := grpcPresentation.NewServer(handler, grpcPresentation.ServerOptions{
		Port:        cfg.GRPCPort,
		Reflection:  cfg.GRPCReflection,
		Credentials: creds,
	}, logger, verifier)

	healthHandler := rest.NewHealthHandler(cfg.ServiceName, map[string]rest.Check{
		"catalog": rest.CatalogCheck(catalog),
	}, metricsHandler, logger)
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(grpcServer.Start)
	g.Go(func() error {
		logger.Info("HTTP health server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		grpcServer.Stop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("validation service stopped")
	return nil
}
