// seed inserts a development user for local testing and prints an access token for it.
// Idempotent: skips the insert if dev@example.com already exists. Requires JWT_PRIVATE_KEY.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-service/internal/config"
	"account-service/internal/db"
	"account-service/internal/logger"
	"account-service/internal/security"
	"account-service/internal/user/domain"
	userrepo "account-service/internal/user/repository"
)

const (
	devUserEmail = "dev@example.com"
	devUserName  = "Dev User"
	devUserPhone = "+15555550100"
	devPassword  = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("seed: db", zap.Error(err))
	}
	defer conn.Close()

	users := userrepo.NewPostgresRepository(conn)
	ctx := context.Background()

	u, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatal("seed: check", zap.Error(err))
	}
	if u != nil {
		log.Info("seed already applied; skipping insert", zap.String("email", devUserEmail))
	} else {
		hash, err := security.NewHasher(cfg.BcryptCost).Hash([]byte(devPassword))
		if err != nil {
			log.Fatal("seed: hash password", zap.Error(err))
		}
		now := time.Now().UTC()
		u = &domain.User{
			ID:           uuid.New().String(),
			Email:        devUserEmail,
			Name:         devUserName,
			Phone:        devUserPhone,
			PasswordHash: hash,
			Status:       domain.UserStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed: create user", zap.Error(err))
		}
		log.Info("seed: created dev user", zap.String("user_id", u.ID), zap.String("email", devUserEmail))
	}

	priv, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatal("seed: JWT_PRIVATE_KEY", zap.Error(err))
	}
	tokens := security.NewTokenProvider(priv, priv.Public(), cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	token, expiresAt, err := tokens.IssueAccess(u.ID, "")
	if err != nil {
		log.Fatal("seed: issue token", zap.Error(err))
	}
	fmt.Printf("user_id=%s\naccess_token=%s\nexpires_at=%s\n", u.ID, token, expiresAt.Format(time.RFC3339))
}
