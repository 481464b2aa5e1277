package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/internal/otp/domain"
)

func newRedisTestRepo(t *testing.T) (*RedisRepository, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client), client
}

func redisRecord(id string, createdAt time.Time, ttl time.Duration) *domain.Record {
	return &domain.Record{
		ID:        id,
		UserID:    "user-1",
		CodeHash:  "hash-" + id,
		UseCase:   domain.UseCasePhoneVerification,
		ExpiresAt: createdAt.Add(ttl),
		CreatedAt: createdAt,
	}
}

func TestRedisRepository_CreateIndexesRecord(t *testing.T) {
	repo, client := newRedisTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := redisRecord("otp-1", now, 10*time.Minute)

	require.NoError(t, repo.Create(ctx, rec))

	fields, err := client.HGetAll(ctx, recordKey("otp-1")).Result()
	require.NoError(t, err)
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, "hash-otp-1", fields["code_hash"])
	assert.Equal(t, "PHV", fields["use_case"])

	score, err := client.ZScore(ctx, userIndexKey("user-1", domain.UseCasePhoneVerification), "otp-1").Result()
	require.NoError(t, err)
	assert.Equal(t, float64(now.UnixMilli()), score)

	score, err = client.ZScore(ctx, expiryIndexKey, "otp-1").Result()
	require.NoError(t, err)
	assert.Equal(t, float64(rec.ExpiresAt.UnixMilli()), score)

	ttl, err := client.TTL(ctx, recordKey("otp-1")).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "records carry no key TTL")
}

func TestRedisRepository_CreateRejectsUnknownUseCase(t *testing.T) {
	repo, client := newRedisTestRepo(t)
	ctx := context.Background()
	rec := redisRecord("otp-1", time.Now().UTC(), time.Minute)
	rec.UseCase = "RESET"

	err := repo.Create(ctx, rec)

	require.ErrorIs(t, err, domain.ErrInvalidUseCase)
	keys, err := client.Keys(ctx, "otp:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRedisRepository_FindFirstOldestMatch(t *testing.T) {
	repo, _ := newRedisTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	newer := redisRecord("otp-newer", now.Add(time.Minute), 10*time.Minute)
	older := redisRecord("otp-older", now, 10*time.Minute)
	newer.CodeHash, older.CodeHash = "same", "same"
	other := redisRecord("otp-other", now.Add(-time.Minute), 10*time.Minute)
	other.UseCase = domain.UseCaseDisableTwoFA
	other.CodeHash = "same"

	// Insert out of creation order.
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.FindFirst(ctx, "user-1", domain.UseCasePhoneVerification, "same")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "otp-older", got.ID)
	assert.True(t, got.CreatedAt.Equal(now))

	got, err = repo.FindFirst(ctx, "user-1", domain.UseCasePhoneVerification, "different")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindFirst(ctx, "user-2", domain.UseCasePhoneVerification, "same")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRepository_FindFirstSkipsMissingHash(t *testing.T) {
	repo, client := newRedisTestRepo(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := redisRecord("otp-1", now, time.Minute)
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, client.ZAdd(ctx, userIndexKey("user-1", domain.UseCasePhoneVerification),
		redis.Z{Score: float64(now.Add(-time.Hour).UnixMilli()), Member: "gone"}).Err())

	got, err := repo.FindFirst(ctx, "user-1", domain.UseCasePhoneVerification, rec.CodeHash)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "otp-1", got.ID)
}

func TestRedisRepository_ConcurrentDeleteSingleWinner(t *testing.T) {
	repo, client := newRedisTestRepo(t)
	ctx := context.Background()
	rec := redisRecord("otp-1", time.Now().UTC(), time.Minute)
	require.NoError(t, repo.Create(ctx, rec))

	const callers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.Delete(ctx, "otp-1")
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	n, err := client.Exists(ctx, recordKey("otp-1")).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, client.ZCard(ctx, userIndexKey("user-1", domain.UseCasePhoneVerification)).Val())
	assert.Zero(t, client.ZCard(ctx, expiryIndexKey).Val())
}

func TestRedisRepository_DeleteExpiredStrictBound(t *testing.T) {
	repo, client := newRedisTestRepo(t)
	ctx := context.Background()
	before := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	expired := redisRecord("otp-expired", before.Add(-10*time.Minute), 10*time.Minute-time.Millisecond)
	boundary := redisRecord("otp-boundary", before.Add(-10*time.Minute), 10*time.Minute)
	live := redisRecord("otp-live", before, 10*time.Minute)
	for _, rec := range []*domain.Record{expired, boundary, live} {
		require.NoError(t, repo.Create(ctx, rec))
	}
	// Index entry whose hash is already gone.
	require.NoError(t, client.ZAdd(ctx, expiryIndexKey,
		redis.Z{Score: float64(before.Add(-time.Hour).UnixMilli()), Member: "ghost"}).Err())

	n, err := repo.DeleteExpired(ctx, before)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	members, err := client.ZRange(ctx, expiryIndexKey, 0, -1).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"otp-boundary", "otp-live"}, members)

	members, err = client.ZRange(ctx, userIndexKey("user-1", domain.UseCasePhoneVerification), 0, -1).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"otp-boundary", "otp-live"}, members)

	exists, err := client.Exists(ctx, recordKey("otp-expired")).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	got, err := repo.FindFirst(ctx, "user-1", domain.UseCasePhoneVerification, boundary.CodeHash)
	require.NoError(t, err)
	require.NotNil(t, got, "record expiring exactly at the bound is kept")
	assert.True(t, got.ExpiresAt.Equal(before))
}
