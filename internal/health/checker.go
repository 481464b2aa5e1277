// Package health keeps the standard gRPC health service in sync with datastore reachability.
package health

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"account-service/internal/logger"
)

const (
	defaultInterval = 10 * time.Second
	pingTimeout     = 2 * time.Second
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker pings the datastore and reports SERVING or NOT_SERVING for the overall server ("")
// and each registered service name.
type Checker struct {
	db       Pinger
	srv      *health.Server
	services []string
	interval time.Duration
	logger   *zap.Logger
}

// NewChecker returns a Checker updating srv. interval <= 0 uses 10s.
func NewChecker(db Pinger, srv *health.Server, interval time.Duration, log *zap.Logger, services ...string) *Checker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Checker{
		db:       db,
		srv:      srv,
		services: append([]string{""}, services...),
		interval: interval,
		logger:   logger.OrNop(log),
	}
}

// Check pings once and updates the serving status. Returns the status that was set.
func (c *Checker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := c.db.PingContext(pingCtx)
		cancel()
		if err != nil {
			c.logger.Warn("health: database ping failed", zap.Error(err))
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	for _, name := range c.services {
		c.srv.SetServingStatus(name, st)
	}
	return st
}

// Run checks immediately and then every interval until ctx is done.
func (c *Checker) Run(ctx context.Context) {
	c.Check(ctx)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
