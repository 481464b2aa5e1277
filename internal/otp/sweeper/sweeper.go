// Package sweeper periodically purges expired OTP records.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"account-service/internal/logger"
)

// Expirer deletes records whose expiry is before the given time.
type Expirer interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// Sweeper runs DeleteExpired on a fixed interval.
type Sweeper struct {
	repo     Expirer
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// New returns a Sweeper. interval must be positive.
func New(repo Expirer, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		repo:     repo,
		interval: interval,
		logger:   logger.OrNop(log),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SweepOnce deletes every record that expired before now and returns how many were removed.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Error("otp sweep failed", zap.Error(err))
		return 0, err
	}
	if n > 0 {
		s.logger.Info("otp sweep", zap.Int64("deleted", n))
	}
	return n, nil
}

// Run sweeps immediately and then every interval until ctx is done. Sweep errors are logged
// and do not stop the loop.
func (s *Sweeper) Run(ctx context.Context) {
	_, _ = s.SweepOnce(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.SweepOnce(ctx)
		}
	}
}
