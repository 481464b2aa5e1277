// Package handler implements the dev-only gRPC DevService.
package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	accountv1 "account-service/api/account/v1"
	"account-service/internal/devotp"
	"account-service/internal/otp/domain"
	"account-service/internal/server/interceptors"
)

const devOTPNote = "DEV MODE ONLY"

// Server implements DevService. Only registered when dev OTP mode is enabled and not production.
type Server struct {
	store devotp.Store
}

// NewServer returns a DevService server that reads codes from store.
func NewServer(store devotp.Store) *Server {
	return &Server{store: store}
}

// GetOTP returns the caller's last plain code for the requested use-case. NotFound if missing or expired.
func (s *Server) GetOTP(ctx context.Context, req *accountv1.GetOTPRequest) (*accountv1.GetOTPResponse, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	useCase, ok := domain.ParseUseCase(req.UseCase)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "use_case must be PHV or D2FA")
	}
	code, ok := s.store.Get(ctx, userID, useCase)
	if !ok {
		return nil, status.Error(codes.NotFound, "OTP not found or expired")
	}
	return &accountv1.GetOTPResponse{
		OTP:  code,
		Note: devOTPNote,
	}, nil
}
