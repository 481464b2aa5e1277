// Worker purges expired OTP records every OTP_SWEEP_INTERVAL from the configured OTP store.
// GRPC_ADDR is required by config but unused (e.g. set to :0).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"account-service/internal/config"
	"account-service/internal/db"
	"account-service/internal/logger"
	otprepo "account-service/internal/otp/repository"
	"account-service/internal/otp/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	var repo otprepo.Repository
	switch cfg.OTPStore {
	case config.OTPStoreRedis:
		client := otprepo.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()
		repo = otprepo.NewRedisRepository(client)
	default:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("worker: db", zap.Error(err))
		}
		defer conn.Close()
		repo = otprepo.NewPostgresRepository(conn)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("worker: sweeping expired OTPs",
		zap.String("store", cfg.OTPStore),
		zap.Duration("interval", cfg.OTPSweepInterval()),
	)
	sweeper.New(repo, cfg.OTPSweepInterval(), log).Run(ctx)
	log.Info("worker: stopped")
}
