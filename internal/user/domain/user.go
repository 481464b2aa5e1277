package domain

import (
	"errors"
	"time"
)

// User is the core user entity.
type User struct {
	ID            string
	Email         string
	Name          string
	Phone         string
	PhoneVerified bool
	TwoFA         bool
	// PasswordHash is the bcrypt credential secret. Never part of any outward view.
	PasswordHash string `json:"-"`
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserStatus string

// ErrNotFound is returned by updates that matched no user row.
var ErrNotFound = errors.New("user not found")

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.ID == "" {
		return errors.New("id is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	return nil
}

// Profile is the outward-facing view of a user. Fields are copied one by one in
// User.Profile so that new sensitive columns never leak by default.
type Profile struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	TwoFA           bool       `json:"twoFA"`
	IsPhoneVerified bool       `json:"isPhoneVerified"`
	Status          UserStatus `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Profile returns the allow-listed projection of u.
func (u *User) Profile() *Profile {
	if u == nil {
		return nil
	}
	return &Profile{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		TwoFA:           u.TwoFA,
		IsPhoneVerified: u.PhoneVerified,
		Status:          u.Status,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
