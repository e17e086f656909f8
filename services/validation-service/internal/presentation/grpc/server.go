package grpc

import (
	"fmt"
	"log/slog"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/bibbank/ibankit/pkg/auth"
	"github.com/bibbank/ibankit/pkg/observability"
)

// methodScopes is the scope each RPC requires.
var methodScopes = auth.MethodScopes{
	MethodValidateIBAN:         auth.ScopeValidate,
	MethodValidateBBAN:         auth.ScopeValidate,
	MethodExtractIBAN:          auth.ScopeValidate,
	MethodValidateBIC:          auth.ScopeValidate,
	MethodComposeIBAN:          auth.ScopeCompose,
	MethodListCountries:        auth.ScopeCatalog,
	MethodScreenPaymentMessage: auth.ScopeScreening,
}

// ServerOptions tunes the gRPC server. Nil Credentials serve plaintext.
type ServerOptions struct {
	Port        int
	Reflection  bool
	Credentials credentials.TransportCredentials
}

// Server wraps the gRPC server with validation service handlers.
type Server struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	port         int
	logger       *slog.Logger
}

// NewServer creates a new gRPC server with the provided handler. Every call
// except health checks needs a token accepted by verifier.
func NewServer(handler ValidationServiceServer, opts ServerOptions, logger *slog.Logger, verifier auth.Verifier) *Server {
	authInterceptor := auth.UnaryServerInterceptor(verifier, methodScopes,
		healthpb.Health_Check_FullMethodName,
		healthpb.Health_Watch_FullMethodName,
	)
	serverOpts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			observability.RecoveryUnaryInterceptor(logger),
			authInterceptor,
		),
	}
	if opts.Credentials != nil {
		serverOpts = append(serverOpts, grpc.Creds(opts.Credentials))
	}
	grpcServer := grpc.NewServer(serverOpts...)
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(grpcServer, healthServer)
	RegisterValidationServiceServer(grpcServer, handler)

	if opts.Reflection {
		reflection.Register(grpcServer)
	}

	return &Server{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		port:         opts.Port,
		logger:       logger,
	}
}

// Start listens on the configured port and serves until Stop is called.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	s.logger.Info("gRPC server starting", "port", s.port)
	return s.Serve(listener)
}

// Serve accepts connections on listener and marks the service healthy.
func (s *Server) Serve(listener net.Listener) error {
	s.healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	if err := s.grpcServer.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("stopping gRPC server")
	s.healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	s.grpcServer.GracefulStop()
}

// GRPCServer returns the underlying grpc.Server for additional registration.
func (s *Server) GRPCServer() *grpc.Server {
	return s.grpcServer
}
