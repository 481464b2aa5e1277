package security

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces bcrypt credential secrets for user records. Plaintext passwords must never be
// logged or stored.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with cost clamped to bcrypt's range; non-positive means bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	switch {
	case cost <= 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Cost reports the effective bcrypt cost.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns the bcrypt digest of password, ready for the users.password_hash column.
func (h *Hasher) Hash(password []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches reports whether password produces digest. A malformed digest never matches.
func (h *Hasher) Matches(digest string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), password) == nil
}
