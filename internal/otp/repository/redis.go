package repository

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"account-service/internal/otp/domain"
)

const (
	redisKeyPrefix = "otp"
	expiryIndexKey = redisKeyPrefix + ":expiry"
)

// RedisRepository stores OTP records as Redis hashes, indexed per (user, use-case) by creation
// time and globally by expiry. Records carry no key TTL: expired records stay until DeleteExpired.
type RedisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository returns an OTP repository backed by client.
func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{client: client}
}

// NewRedisClient returns a single-node client for addr.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func recordKey(id string) string {
	return fmt.Sprintf("%s:rec:%s", redisKeyPrefix, id)
}

func userIndexKey(userID string, useCase domain.UseCase) string {
	return fmt.Sprintf("%s:idx:%s:%s", redisKeyPrefix, userID, useCase)
}

// Create writes the record hash and both index entries in one MULTI/EXEC.
func (r *RedisRepository) Create(ctx context.Context, rec *domain.Record) error {
	if !rec.UseCase.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUseCase, rec.UseCase)
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, recordKey(rec.ID), recordToHash(rec))
		pipe.ZAdd(ctx, userIndexKey(rec.UserID, rec.UseCase), redis.Z{
			Score:  float64(rec.CreatedAt.UnixMilli()),
			Member: rec.ID,
		})
		pipe.ZAdd(ctx, expiryIndexKey, redis.Z{
			Score:  float64(rec.ExpiresAt.UnixMilli()),
			Member: rec.ID,
		})
		return nil
	})
	return err
}

// FindFirst walks the user's index oldest-first and returns the first record whose digest matches.
func (r *RedisRepository) FindFirst(ctx context.Context, userID string, useCase domain.UseCase, codeHash string) (*domain.Record, error) {
	ids, err := r.client.ZRange(ctx, userIndexKey(userID, useCase), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		fields, err := r.client.HGetAll(ctx, recordKey(id)).Result()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}
		rec, err := recordFromHash(id, fields)
		if err != nil {
			return nil, err
		}
		if subtle.ConstantTimeCompare([]byte(rec.CodeHash), []byte(codeHash)) == 1 {
			return rec, nil
		}
	}
	return nil, nil
}

// Delete removes the record hash and its index entries. Only the caller whose DEL removed the
// hash gets true.
func (r *RedisRepository) Delete(ctx context.Context, id string) (bool, error) {
	key := recordKey(id)
	vals, err := r.client.HMGet(ctx, key, "user_id", "use_case").Result()
	if err != nil {
		return false, err
	}
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	userID, _ := vals[0].(string)
	useCase, _ := vals[1].(string)
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		if userID != "" && useCase != "" {
			pipe.ZRem(ctx, userIndexKey(userID, domain.UseCase(useCase)), id)
		}
		pipe.ZRem(ctx, expiryIndexKey, id)
		return nil
	})
	return true, err
}

// DeleteExpired removes every record whose expiry score is strictly below before.
func (r *RedisRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ids, err := r.client.ZRangeByScore(ctx, expiryIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(before.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, err
	}
	var removed int64
	for _, id := range ids {
		ok, err := r.Delete(ctx, id)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		} else {
			// Hash already gone; drop the dangling index entry.
			r.client.ZRem(ctx, expiryIndexKey, id)
		}
	}
	return removed, nil
}

func recordToHash(rec *domain.Record) map[string]interface{} {
	return map[string]interface{}{
		"user_id":    rec.UserID,
		"code_hash":  rec.CodeHash,
		"use_case":   string(rec.UseCase),
		"expires_at": rec.ExpiresAt.UTC().Format(time.RFC3339Nano),
		"created_at": rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func recordFromHash(id string, fields map[string]string) (*domain.Record, error) {
	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("otp record %s: expires_at: %w", id, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("otp record %s: created_at: %w", id, err)
	}
	return &domain.Record{
		ID:        id,
		UserID:    fields["user_id"],
		CodeHash:  fields["code_hash"],
		UseCase:   domain.UseCase(fields["use_case"]),
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}, nil
}
