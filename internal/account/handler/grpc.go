// Package handler implements the account.v1.AccountService gRPC server.
package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	accountv1 "account-service/api/account/v1"
	"account-service/internal/account/service"
	"account-service/internal/logger"
	"account-service/internal/server/interceptors"
	userdomain "account-service/internal/user/domain"
)

// Messages returned to clients for the service's sentinel errors.
const (
	MsgUserNotFound = "User not found"
	MsgInvalidOTP   = "Invalid OTP"
	MsgExpiredOTP   = "Expired token"

	MsgSet2FARequired = "set_2fa is required"
)

// AccountService is the subset of service.AccountService the transport needs.
type AccountService interface {
	SetTwoFA(ctx context.Context, userID string, desired bool) error
	VerifyPhone(ctx context.Context, userID string) error
	ValidatePhoneVerification(ctx context.Context, userID, token string) error
	DisableTwoFAVerification(ctx context.Context, userID, token string) error
	GetUserInfo(ctx context.Context, userID string) (*userdomain.Profile, error)
}

// Server implements AccountService (gRPC server). The caller is always the user in context.
type Server struct {
	accountv1.UnimplementedAccountServiceServer
	svc    AccountService
	logger *zap.Logger
}

// NewServer returns a new Account gRPC server. logger may be nil.
func NewServer(svc AccountService, log *zap.Logger) *Server {
	return &Server{svc: svc, logger: logger.OrNop(log)}
}

// SetTwoFA enables 2FA directly, or issues a disable OTP when turning it off.
func (s *Server) SetTwoFA(ctx context.Context, req *accountv1.SetTwoFARequest) (*accountv1.SetTwoFAResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Set2FA == nil {
		return nil, status.Error(codes.InvalidArgument, MsgSet2FARequired)
	}
	if err := s.svc.SetTwoFA(ctx, userID, *req.Set2FA); err != nil {
		return nil, s.toStatus("SetTwoFA", err)
	}
	return &accountv1.SetTwoFAResponse{Success: true}, nil
}

// VerifyPhone issues a phone verification OTP to the caller's phone.
func (s *Server) VerifyPhone(ctx context.Context, req *accountv1.VerifyPhoneRequest) (*accountv1.VerifyPhoneResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.VerifyPhone(ctx, userID); err != nil {
		return nil, s.toStatus("VerifyPhone", err)
	}
	return &accountv1.VerifyPhoneResponse{Success: true}, nil
}

// ValidatePhoneVerification consumes a phone verification OTP and marks the phone verified.
func (s *Server) ValidatePhoneVerification(ctx context.Context, req *accountv1.ValidatePhoneVerificationRequest) (*accountv1.ValidatePhoneVerificationResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.ValidatePhoneVerification(ctx, userID, req.Token); err != nil {
		return nil, s.toStatus("ValidatePhoneVerification", err)
	}
	return &accountv1.ValidatePhoneVerificationResponse{Success: true}, nil
}

// DisableTwoFAVerification consumes a disable OTP and turns 2FA off.
func (s *Server) DisableTwoFAVerification(ctx context.Context, req *accountv1.DisableTwoFAVerificationRequest) (*accountv1.DisableTwoFAVerificationResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.DisableTwoFAVerification(ctx, userID, req.Token); err != nil {
		return nil, s.toStatus("DisableTwoFAVerification", err)
	}
	return &accountv1.DisableTwoFAVerificationResponse{Success: true}, nil
}

// GetUserInfo returns the caller's public profile.
func (s *Server) GetUserInfo(ctx context.Context, req *accountv1.GetUserInfoRequest) (*accountv1.GetUserInfoResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, s.toStatus("GetUserInfo", err)
	}
	return &accountv1.GetUserInfoResponse{
		Success: true,
		User:    ProfileToAPI(p),
	}, nil
}

// ProfileToAPI converts a domain profile to the wire type. Returns nil for nil.
func ProfileToAPI(p *userdomain.Profile) *accountv1.UserInfo {
	if p == nil {
		return nil
	}
	return &accountv1.UserInfo{
		ID:              p.ID,
		Email:           p.Email,
		Name:            p.Name,
		Phone:           p.Phone,
		TwoFA:           p.TwoFA,
		IsPhoneVerified: p.IsPhoneVerified,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ErrorMessage returns the client message for a service sentinel error and true,
// or "", false for any other error.
func ErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return MsgUserNotFound, true
	case errors.Is(err, service.ErrInvalidOTP):
		return MsgInvalidOTP, true
	case errors.Is(err, service.ErrExpiredOTP):
		return MsgExpiredOTP, true
	}
	return "", false
}

func callerID(ctx context.Context) (string, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	return userID, nil
}

func (s *Server) toStatus(op string, err error) error {
	if msg, ok := ErrorMessage(err); ok {
		return status.Error(codes.NotFound, msg)
	}
	s.logger.Error("account operation failed", zap.String("op", op), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}
