package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"account-service/internal/db/sqlc/gen"
	"account-service/internal/user/domain"
)

type PostgresRepository struct {
	queries *gen.Queries
	now     func() time.Time
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db), now: func() time.Time { return time.Now().UTC() }}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genUserToDomain(&u), nil
}

// GetByEmail returns the user with the given email, or nil if not found.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genUserToDomain(&u), nil
}

// Create persists the user. The user must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	_, err := r.queries.CreateUser(ctx, gen.CreateUserParams{
		ID:            u.ID,
		Email:         u.Email,
		Name:          nullString(u.Name),
		Phone:         nullString(u.Phone),
		PhoneVerified: u.PhoneVerified,
		TwoFa:         u.TwoFA,
		PasswordHash:  nullString(u.PasswordHash),
		Status:        string(u.Status),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	})
	return err
}

// SetTwoFA updates two_fa for id. Returns domain.ErrNotFound if id matched no row.
func (r *PostgresRepository) SetTwoFA(ctx context.Context, id string, enabled bool) error {
	n, err := r.queries.SetUserTwoFA(ctx, gen.SetUserTwoFAParams{
		ID:        id,
		TwoFa:     enabled,
		UpdatedAt: r.now(),
	})
	return updated(n, err)
}

// SetPhoneVerified sets phone_verified to true for id. Returns domain.ErrNotFound if id matched no row.
func (r *PostgresRepository) SetPhoneVerified(ctx context.Context, id string) error {
	n, err := r.queries.SetUserPhoneVerified(ctx, gen.SetUserPhoneVerifiedParams{
		ID:        id,
		UpdatedAt: r.now(),
	})
	return updated(n, err)
}

func updated(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func genUserToDomain(u *gen.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name.String,
		Phone:         u.Phone.String,
		PhoneVerified: u.PhoneVerified,
		TwoFA:         u.TwoFa,
		PasswordHash:  u.PasswordHash.String,
		Status:        domain.UserStatus(u.Status),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
