package repository

import (
	"context"
	"time"

	"account-service/internal/otp/domain"
)

// Repository defines persistence for OTP records.
type Repository interface {
	// Create persists the record. The record must have ID set and a valid use-case;
	// otherwise domain.ErrInvalidUseCase is returned and nothing is written.
	Create(ctx context.Context, r *domain.Record) error
	// FindFirst returns the oldest record for (userID, useCase) whose digest equals codeHash, or nil if none.
	FindFirst(ctx context.Context, userID string, useCase domain.UseCase, codeHash string) (*domain.Record, error)
	// Delete removes the record by id and reports whether a record was removed.
	// Concurrent callers racing on the same id see true at most once.
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteExpired removes every record whose expiry is before the given time and returns the count.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
