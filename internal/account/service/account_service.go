package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"account-service/internal/otp"
	otpdomain "account-service/internal/otp/domain"
	userdomain "account-service/internal/user/domain"
)

// Sentinel errors for the account service; handlers map all three to NotFound.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidOTP   = errors.New("invalid OTP")
	ErrExpiredOTP   = errors.New("expired OTP")
)

const (
	defaultOTPTTL      = 10 * time.Minute
	defaultSendTimeout = 10 * time.Second

	msgDisableTwoFA      = "Use this code %s to disable multifactor authentication on your account"
	msgPhoneVerification = "Use this code %s to verify the phone number registered on your account"

	meterName = "account-service/internal/account/service"
)

// UserRepo is the minimal user repository needed by the account service. The setters return
// userdomain.ErrNotFound when no user matched.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
	SetTwoFA(ctx context.Context, id string, enabled bool) error
	SetPhoneVerified(ctx context.Context, id string) error
}

// OTPRepo is the minimal OTP repository needed by the account service.
type OTPRepo interface {
	Create(ctx context.Context, r *otpdomain.Record) error
	FindFirst(ctx context.Context, userID string, useCase otpdomain.UseCase, codeHash string) (*otpdomain.Record, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// DevOTPStore receives plain codes in dev OTP mode instead of the Sender.
type DevOTPStore interface {
	Put(ctx context.Context, userID string, useCase otpdomain.UseCase, code string, expiresAt time.Time)
}

// Option configures an AccountService.
type Option func(*AccountService)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *AccountService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOTPTTL sets the OTP lifetime. Non-positive values are ignored.
func WithOTPTTL(ttl time.Duration) Option {
	return func(s *AccountService) {
		if ttl > 0 {
			s.otpTTL = ttl
		}
	}
}

// WithSendTimeout bounds each SMS send. Non-positive values are ignored.
func WithSendTimeout(d time.Duration) Option {
	return func(s *AccountService) {
		if d > 0 {
			s.sendTimeout = d
		}
	}
}

// WithDevOTPStore enables dev OTP mode: codes go to store and no SMS is sent.
func WithDevOTPStore(store DevOTPStore) Option {
	return func(s *AccountService) {
		s.devStore = store
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *AccountService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCodeGenerator overrides OTP generation.
func WithCodeGenerator(gen func() (string, error)) Option {
	return func(s *AccountService) {
		if gen != nil {
			s.generate = gen
		}
	}
}

// WithMeterProvider sets the meter provider for OTP counters. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *AccountService) {
		if mp != nil {
			s.meterProvider = mp
		}
	}
}

// AccountService owns the two-factor and phone-verification flows for a caller.
// It holds no per-request mutable state and is safe for concurrent use.
type AccountService struct {
	users    UserRepo
	otps     OTPRepo
	sender   Sender
	devStore DevOTPStore

	logger        *zap.Logger
	otpTTL        time.Duration
	sendTimeout   time.Duration
	now           func() time.Time
	generate      func() (string, error)
	meterProvider metric.MeterProvider

	issued      metric.Int64Counter
	validations metric.Int64Counter
}

// NewAccountService returns an AccountService with the given dependencies.
func NewAccountService(users UserRepo, otps OTPRepo, sender Sender, opts ...Option) *AccountService {
	s := &AccountService{
		users:         users,
		otps:          otps,
		sender:        sender,
		logger:        zap.NewNop(),
		otpTTL:        defaultOTPTTL,
		sendTimeout:   defaultSendTimeout,
		now:           func() time.Time { return time.Now().UTC() },
		generate:      otp.Generate,
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}
	meter := s.meterProvider.Meter(meterName)
	var err error
	s.issued, err = meter.Int64Counter("account.otp.issued",
		metric.WithDescription("One-time codes issued, by use case."))
	if err != nil {
		s.logger.Warn("otp issued counter unavailable", zap.Error(err))
	}
	s.validations, err = meter.Int64Counter("account.otp.validations",
		metric.WithDescription("One-time code validations, by use case and result."))
	if err != nil {
		s.logger.Warn("otp validations counter unavailable", zap.Error(err))
	}
	return s
}

// SetTwoFA moves the caller's two-factor flag toward desired. Enabling applies immediately.
// Disabling an enabled flag only issues a D2FA code; the flag flips in DisableTwoFAVerification.
func (s *AccountService) SetTwoFA(ctx context.Context, userID string, desired bool) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.TwoFA == desired {
		return nil
	}
	if user.TwoFA && !desired {
		return s.issue(ctx, user, otpdomain.UseCaseDisableTwoFA, msgDisableTwoFA)
	}
	if err := s.users.SetTwoFA(ctx, user.ID, desired); err != nil {
		return userUpdateError("set two_fa", err)
	}
	return nil
}

// VerifyPhone issues a PHV code to the caller's phone unless it is already verified.
func (s *AccountService) VerifyPhone(ctx context.Context, userID string) error {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.PhoneVerified {
		return nil
	}
	return s.issue(ctx, user, otpdomain.UseCasePhoneVerification, msgPhoneVerification)
}

// ValidatePhoneVerification consumes a PHV code and marks the phone verified.
func (s *AccountService) ValidatePhoneVerification(ctx context.Context, userID, token string) error {
	rec, err := s.consume(ctx, userID, token, otpdomain.UseCasePhoneVerification)
	if err != nil {
		return err
	}
	if err := s.users.SetPhoneVerified(ctx, userID); err != nil {
		s.restore(ctx, rec, err)
		return userUpdateError("set phone verified", err)
	}
	return nil
}

// DisableTwoFAVerification consumes a D2FA code and turns two-factor off.
func (s *AccountService) DisableTwoFAVerification(ctx context.Context, userID, token string) error {
	rec, err := s.consume(ctx, userID, token, otpdomain.UseCaseDisableTwoFA)
	if err != nil {
		return err
	}
	if err := s.users.SetTwoFA(ctx, userID, false); err != nil {
		s.restore(ctx, rec, err)
		return userUpdateError("set two_fa", err)
	}
	return nil
}

// GetUserInfo returns the caller's public profile.
func (s *AccountService) GetUserInfo(ctx context.Context, userID string) (*userdomain.Profile, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

func (s *AccountService) loadUser(ctx context.Context, userID string) (*userdomain.User, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// issue persists a fresh code for useCase and delivers it. A failed send rolls the record back.
func (s *AccountService) issue(ctx context.Context, user *userdomain.User, useCase otpdomain.UseCase, template string) error {
	code, err := s.generate()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	now := s.now()
	rec := &otpdomain.Record{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CodeHash:  otp.Hash(code),
		UseCase:   useCase,
		ExpiresAt: now.Add(s.otpTTL),
		CreatedAt: now,
	}
	if err := s.otps.Create(ctx, rec); err != nil {
		return fmt.Errorf("create otp: %w", err)
	}

	if s.devStore != nil {
		s.devStore.Put(ctx, user.ID, useCase, code, rec.ExpiresAt)
	} else if err := s.send(ctx, user.Phone, fmt.Sprintf(template, code)); err != nil {
		if _, delErr := s.otps.Delete(ctx, rec.ID); delErr != nil {
			s.logger.Error("otp rollback failed",
				zap.String("otp_id", rec.ID),
				zap.String("use_case", string(useCase)),
				zap.Error(delErr))
		}
		s.logger.Warn("otp delivery failed",
			zap.String("user_id", user.ID),
			zap.String("use_case", string(useCase)),
			zap.Error(err))
		return fmt.Errorf("send otp: %w", err)
	}

	s.count(ctx, s.issued, attribute.String("use_case", string(useCase)))
	s.logger.Info("otp issued",
		zap.String("user_id", user.ID),
		zap.String("use_case", string(useCase)),
		zap.Time("expires_at", rec.ExpiresAt))
	return nil
}

func (s *AccountService) send(ctx context.Context, phone, message string) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	return s.sender.Send(sendCtx, phone, message)
}

// consume finds the caller's code for useCase and deletes it, returning the removed record.
// Only the caller whose delete removed the record succeeds; an expired record is left for the sweeper.
func (s *AccountService) consume(ctx context.Context, userID, token string, useCase otpdomain.UseCase) (*otpdomain.Record, error) {
	if token == "" {
		s.countValidation(ctx, useCase, "invalid")
		return nil, ErrInvalidOTP
	}
	rec, err := s.otps.FindFirst(ctx, userID, useCase, otp.Hash(token))
	if err != nil {
		return nil, fmt.Errorf("find otp: %w", err)
	}
	if rec == nil {
		s.countValidation(ctx, useCase, "invalid")
		return nil, ErrInvalidOTP
	}
	if rec.Expired(s.now()) {
		s.countValidation(ctx, useCase, "expired")
		return nil, ErrExpiredOTP
	}
	removed, err := s.otps.Delete(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("delete otp: %w", err)
	}
	if !removed {
		s.countValidation(ctx, useCase, "invalid")
		return nil, ErrInvalidOTP
	}
	s.countValidation(ctx, useCase, "ok")
	return rec, nil
}

// restore re-creates a consumed record after the flag update failed, so the user can retry the
// same code. The OTP and user stores may differ, so the pair cannot share one transaction.
// A missing user gets no restore.
func (s *AccountService) restore(ctx context.Context, rec *otpdomain.Record, cause error) {
	if errors.Is(cause, userdomain.ErrNotFound) {
		return
	}
	if err := s.otps.Create(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Error("otp restore failed",
			zap.String("otp_id", rec.ID),
			zap.String("use_case", string(rec.UseCase)),
			zap.NamedError("cause", cause),
			zap.Error(err))
		return
	}
	s.logger.Warn("otp restored after user update failed",
		zap.String("otp_id", rec.ID),
		zap.String("use_case", string(rec.UseCase)),
		zap.Error(cause))
}

func userUpdateError(op string, err error) error {
	if errors.Is(err, userdomain.ErrNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *AccountService) countValidation(ctx context.Context, useCase otpdomain.UseCase, result string) {
	s.count(ctx, s.validations,
		attribute.String("use_case", string(useCase)),
		attribute.String("result", result))
}

func (s *AccountService) count(ctx context.Context, c metric.Int64Counter, attrs ...attribute.KeyValue) {
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(attrs...))
}
