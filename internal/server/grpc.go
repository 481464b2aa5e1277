// Package server assembles the gRPC server: interceptor chain, stats handler, and service registration.
package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	accountv1 "account-service/api/account/v1"
	"account-service/internal/server/interceptors"
	"account-service/internal/telemetry"
)

// Deps holds the service implementations registered on the gRPC server.
type Deps struct {
	// Account is the AccountService implementation. Required.
	Account accountv1.AccountServiceServer
	// DevOTP is the dev-only DevService (GetOTP). If nil, DevService is not registered.
	// Set only when dev OTP mode is enabled and not production.
	DevOTP accountv1.DevServiceServer
	// Health is the standard gRPC health server. If nil, the health service is not registered.
	Health *health.Server
}

// Options configures the interceptor chain built by NewGRPCServer.
type Options struct {
	Tokens    interceptors.TokenValidator
	Telemetry telemetry.EventEmitter
	Logger    *zap.Logger
	// Instrument adds the otelgrpc stats handler (traces and RPC metrics via the global providers).
	Instrument bool
}

// PublicMethods are callable without a Bearer token.
var PublicMethods = map[string]bool{
	healthpb.Health_Check_FullMethodName: true,
	healthpb.Health_Watch_FullMethodName: true,
}

// NewGRPCServer returns a gRPC server with logging, auth, and telemetry interceptors in that order.
// Health checks are neither logged nor emitted as telemetry.
func NewGRPCServer(opts Options) *grpc.Server {
	serverOpts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingUnary(opts.Logger, PublicMethods),
			interceptors.AuthUnary(opts.Tokens, PublicMethods),
			interceptors.TelemetryUnary(opts.Telemetry, opts.Logger, PublicMethods),
		),
	}
	if opts.Instrument {
		serverOpts = append(serverOpts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}
	return grpc.NewServer(serverOpts...)
}

// RegisterServices registers the account services with the given server.
//
// Service → handler mapping:
//   - account.v1.AccountService → internal/account/handler
//   - account.v1.DevService     → internal/devotp/handler (dev OTP mode only)
//   - grpc.health.v1.Health     → grpc/health, kept current by internal/health
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	accountv1.RegisterAccountServiceServer(s, deps.Account)
	if deps.DevOTP != nil {
		accountv1.RegisterDevServiceServer(s, deps.DevOTP)
	}
	if deps.Health != nil {
		healthpb.RegisterHealthServer(s, deps.Health)
	}
}
