package domain

import (
	"errors"
	"strings"
	"time"
)

// UseCase tags which flow an OTP belongs to. Values are the stored column values.
type UseCase string

const (
	UseCasePhoneVerification UseCase = "PHV"
	UseCaseDisableTwoFA      UseCase = "D2FA"
)

// ErrInvalidUseCase is returned by stores asked to persist a record with an unknown use-case.
var ErrInvalidUseCase = errors.New("otp: invalid use case")

// Valid reports whether u is one of the known use-cases.
func (u UseCase) Valid() bool {
	return u == UseCasePhoneVerification || u == UseCaseDisableTwoFA
}

// ParseUseCase accepts the stored value or a readable alias ("phone_verification", "disable_2fa").
func ParseUseCase(s string) (UseCase, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phv", "phone_verification":
		return UseCasePhoneVerification, true
	case "d2fa", "disable_2fa", "disable_two_fa":
		return UseCaseDisableTwoFA, true
	default:
		return "", false
	}
}

// Record is an issued one-time code. Only the code digest is kept.
type Record struct {
	ID        string
	UserID    string
	CodeHash  string
	UseCase   UseCase
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the record's expiry has passed at now.
func (r *Record) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
