// Package proxy provides HTTP-to-gRPC proxy clients for backend services.
//
// Each service client holds a gRPC connection and exposes HTTP handler
// functions that translate JSON requests into gRPC calls and return
// JSON responses. The clients use a JSON codec on the wire, matching the
// codec the backends register, so no generated stubs are needed.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// maxBodyBytes bounds request bodies. Payment messages are the largest input.
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

// ServiceConn represents a gRPC client connection to a backend service.
// HealthService is the name the backend reports in grpc.health.v1.
type ServiceConn struct {
	Name          string
	Addr          string
	HealthService string
	Conn          *grpc.ClientConn
	Health        healthpb.HealthClient
	Logger        *slog.Logger
}

// Dial creates a lazy gRPC connection to the backend service.
func Dial(name, addr, healthService string, logger *slog.Logger, opts ...grpc.DialOption) (*ServiceConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s at %s: %w", name, addr, err)
	}

	logger.Info("connected to backend service", "service", name, "addr", addr)

	return &ServiceConn{
		Name:          name,
		Addr:          addr,
		HealthService: healthService,
		Conn:          conn,
		Health:        healthpb.NewHealthClient(conn),
		Logger:        logger,
	}, nil
}

// Close closes the underlying gRPC connection.
func (sc *ServiceConn) Close() error {
	if sc == nil || sc.Conn == nil {
		return nil
	}
	return sc.Conn.Close()
}

// Invoke calls a gRPC method on the backend service using the JSON codec.
func (sc *ServiceConn) Invoke(ctx context.Context, method string, req, resp interface{}) error {
	if sc == nil || sc.Conn == nil {
		return status.Error(codes.Unavailable, "backend service not connected")
	}
	return sc.Conn.Invoke(ctx, method, req, resp, grpcCallOption())
}

// CheckHealth queries the gRPC health check endpoint of the backend service.
func (sc *ServiceConn) CheckHealth(ctx context.Context) error {
	if sc == nil || sc.Conn == nil {
		return errors.New("backend service not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := sc.Health.Check(ctx, &healthpb.HealthCheckRequest{
		Service: sc.HealthService,
	})
	if err != nil {
		return fmt.Errorf("health check %s: %w", sc.Name, err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("service %s not serving: %s", sc.Name, resp.Status)
	}
	return nil
}

// outgoingContext forwards the caller's credentials and request ID to the
// backend, which authorizes the call again on its side.
func outgoingContext(r *http.Request) context.Context {
	ctx := r.Context()
	pairs := make([]string, 0, 4)
	if v := r.Header.Get("Authorization"); v != "" {
		pairs = append(pairs, "authorization", v)
	}
	if v := r.Header.Get("X-Request-ID"); v != "" {
		pairs = append(pairs, "x-request-id", v)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// readJSON reads and unmarshals a JSON request body into the provided value.
func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return errEmptyBody
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// writeJSON marshals the value as JSON and writes it to the response.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, map[string]string{"error": msg})
}

// grpcToHTTPStatus maps a gRPC status code to an HTTP status code.
func grpcToHTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// handleGRPCError writes an appropriate HTTP error response for a gRPC error.
func handleGRPCError(w http.ResponseWriter, err error, logger *slog.Logger) {
	st, ok := status.FromError(err)
	if !ok {
		logger.Error("backend call failed", "error", err)
		writeError(w, http.StatusBadGateway, "backend service unavailable")
		return
	}
	httpStatus := grpcToHTTPStatus(st.Code())
	level := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, "backend gRPC error",
		"code", st.Code().String(),
		"message", st.Message(),
		"http_status", httpStatus,
	)
	writeError(w, httpStatus, st.Message())
}
