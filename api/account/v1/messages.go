package accountv1

import "time"

// SetTwoFARequest carries the desired flag. Set2FA is a pointer so an omitted field is
// distinguishable from an explicit false.
type SetTwoFARequest struct {
	Set2FA *bool `json:"set_2fa"`
}

type SetTwoFAResponse struct {
	Success bool `json:"success"`
}

type VerifyPhoneRequest struct{}

type VerifyPhoneResponse struct {
	Success bool `json:"success"`
}

type ValidatePhoneVerificationRequest struct {
	Token string `json:"token"`
}

type ValidatePhoneVerificationResponse struct {
	Success bool `json:"success"`
}

type DisableTwoFAVerificationRequest struct {
	Token string `json:"token"`
}

type DisableTwoFAVerificationResponse struct {
	Success bool `json:"success"`
}

type GetUserInfoRequest struct{}

// UserInfo is the public user profile. It has no credential or one-time-code fields.
type UserInfo struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	TwoFA           bool      `json:"twoFA"`
	IsPhoneVerified bool      `json:"isPhoneVerified"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type GetUserInfoResponse struct {
	Success bool      `json:"success"`
	User    *UserInfo `json:"user,omitempty"`
}

// GetOTPRequest names the use-case ("PHV", "D2FA", or an alias) whose last code to return.
type GetOTPRequest struct {
	UseCase string `json:"use_case"`
}

type GetOTPResponse struct {
	OTP  string `json:"otp"`
	Note string `json:"note,omitempty"`
}
