// Package devotp keeps the last plain OTP per (user, use-case) in memory. Only wired when dev OTP
// mode is enabled, where it replaces SMS delivery and backs DevService.GetOTP.
package devotp

import (
	"context"
	"sync"
	"time"

	"account-service/internal/otp/domain"
)

// Store holds plain OTP codes for dev-only retrieval. Not used in production.
type Store interface {
	// Put stores code for (userID, useCase) until expiresAt, replacing any previous code.
	Put(ctx context.Context, userID string, useCase domain.UseCase, code string, expiresAt time.Time)
	// Get returns the code if present and not expired.
	Get(ctx context.Context, userID string, useCase domain.UseCase) (code string, ok bool)
}

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	m    map[string]entry
	nowF func() time.Time
}

// NewMemoryStore returns a new in-memory dev OTP store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m:    make(map[string]entry),
		nowF: func() time.Time { return time.Now().UTC() },
	}
}

func key(userID string, useCase domain.UseCase) string {
	return userID + ":" + string(useCase)
}

// Put stores code for (userID, useCase) until expiresAt.
func (s *MemoryStore) Put(ctx context.Context, userID string, useCase domain.UseCase, code string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key(userID, useCase)] = entry{code: code, expiresAt: expiresAt}
}

// Get returns the code for (userID, useCase) if present and not expired. A code is still valid at
// exactly expiresAt, matching domain.Record.Expired. Expired entries are dropped.
func (s *MemoryStore) Get(ctx context.Context, userID string, useCase domain.UseCase) (string, bool) {
	k := key(userID, useCase)
	s.mu.RLock()
	e, ok := s.m[k]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if s.nowF().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.m, k)
		s.mu.Unlock()
		return "", false
	}
	return e.code, true
}
