package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"account-service/internal/db/sqlc/gen"
	"account-service/internal/otp/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns an OTP repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// Create persists the OTP record.
func (r *PostgresRepository) Create(ctx context.Context, rec *domain.Record) error {
	if !rec.UseCase.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUseCase, rec.UseCase)
	}
	return r.queries.CreateOTP(ctx, gen.CreateOTPParams{
		ID:        rec.ID,
		UserID:    rec.UserID,
		CodeHash:  rec.CodeHash,
		UseCase:   string(rec.UseCase),
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	})
}

// FindFirst returns the oldest matching record, or nil if not found.
func (r *PostgresRepository) FindFirst(ctx context.Context, userID string, useCase domain.UseCase, codeHash string) (*domain.Record, error) {
	row, err := r.queries.FindFirstOTP(ctx, gen.FindFirstOTPParams{
		UserID:   userID,
		UseCase:  string(useCase),
		CodeHash: codeHash,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genOTPToDomain(&row), nil
}

// Delete removes the record by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	n, err := r.queries.DeleteOTP(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteExpired removes records that expired before the given time.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return r.queries.DeleteExpiredOTPs(ctx, before)
}

func genOTPToDomain(o *gen.Otp) *domain.Record {
	return &domain.Record{
		ID:        o.ID,
		UserID:    o.UserID,
		CodeHash:  o.CodeHash,
		UseCase:   domain.UseCase(o.UseCase),
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
	}
}
