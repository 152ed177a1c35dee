package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/repository"
	"github.com/skyticket/backend/pkg/hash"
	"github.com/skyticket/backend/pkg/logger"
	"github.com/skyticket/backend/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type registrationService struct {
	userRepository                repository.Users
	otpCodeRepository             repository.OtpCodes
	pendingRegistrationRepository repository.PendingRegistrations
	sessions                      sessionCreator
	hasher                        hash.PasswordHasher
	otpGenerator                  otp.Generator
	notifier                      Notifier
	authConfig                    config.AuthConfig
	emailConfig                   config.EmailConfig
}

func newRegistrationService(userRepository repository.Users,
	otpCodeRepository repository.OtpCodes,
	pendingRegistrationRepository repository.PendingRegistrations,
	sessions sessionCreator,
	hasher hash.PasswordHasher,
	otpGenerator otp.Generator,
	notifier Notifier,
	authConfig config.AuthConfig,
	emailConfig config.EmailConfig,
) *registrationService {
	return &registrationService{
		userRepository:                userRepository,
		otpCodeRepository:             otpCodeRepository,
		pendingRegistrationRepository: pendingRegistrationRepository,
		sessions:                      sessions,
		hasher:                        hasher,
		otpGenerator:                  otpGenerator,
		notifier:                      notifier,
		authConfig:                    authConfig,
		emailConfig:                   emailConfig,
	}
}

// RequestRegistration stores the sign-up data under a fresh token and sends an OTP
// to the phone number. The account is created only by VerifyRegistration.
func (s *registrationService) RequestRegistration(ctx context.Context, input RegistrationInput) (*RegistrationTicket, error) {
	conflicts, err := s.userRepository.FindConflicts(ctx, input.PhoneNumber, input.UserName, input.Email)
	if err != nil {
		return nil, fmt.Errorf("find user conflicts failed: %w", err)
	}
	switch {
	case conflicts.PhoneNumber:
		return nil, ErrPhoneNumberTaken
	case conflicts.UserName:
		return nil, ErrUserNameTaken
	case conflicts.Email:
		return nil, ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	code := &domain.OtpCode{
		PhoneNumber: input.PhoneNumber,
		Code:        s.otpGenerator.Code(),
	}
	if err := s.otpCodeRepository.Create(ctx, code); err != nil {
		return nil, fmt.Errorf("create otp code failed: %w", err)
	}

	if err := s.notifier.SendOtp(ctx, code.PhoneNumber, code.Code); err != nil {
		return nil, fmt.Errorf("send otp failed: %w", err)
	}

	now := time.Now()
	pending := &domain.PendingRegistration{
		PhoneNumber:  input.PhoneNumber,
		UserName:     input.UserName,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}

	token := uuid.NewString()
	if err := s.pendingRegistrationRepository.Save(ctx, token, pending, s.authConfig.RegistrationTTL); err != nil {
		return nil, fmt.Errorf("save pending registration failed: %w", err)
	}

	return &RegistrationTicket{
		Token:     token,
		ExpiresAt: now.Add(s.authConfig.RegistrationTTL),
	}, nil
}

// VerifyRegistration creates the account when code equals the newest OTP issued to the
// pending phone number. A mismatch leaves both the OTP and the pending record in place.
func (s *registrationService) VerifyRegistration(ctx context.Context, input VerifyRegistrationInput) (*Tokens, error) {
	pending, err := s.pendingRegistrationRepository.Get(ctx, input.Token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoSuchSession
		}
		return nil, fmt.Errorf("get pending registration failed: %w", err)
	}

	code, err := s.otpCodeRepository.GetLatestByPhoneNumber(ctx, pending.PhoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrVerificationCodeNotFound
		}
		return nil, fmt.Errorf("get otp code failed: %w", err)
	}

	if !code.Matches(input.Code) {
		return nil, ErrCodeMismatch
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	user := &domain.User{
		ID:          userID,
		PhoneNumber: pending.PhoneNumber,
		UserName:    pending.UserName,
		Email:       pending.Email,
		FirstName:   pending.FirstName,
		LastName:    pending.LastName,
		Password:    pending.PasswordHash,
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExist
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	if err := s.otpCodeRepository.Delete(ctx, code.ID); err != nil {
		logger.Warn("delete otp code failed", zap.Int64("otp_id", code.ID), zap.Error(err))
	}

	if err := s.pendingRegistrationRepository.Delete(ctx, input.Token); err != nil {
		logger.Warn("delete pending registration failed", zap.Error(err))
	}

	if s.emailConfig.Enabled && user.Email != "" {
		if err := s.notifier.SendWelcome(ctx, user.Email, user.FirstName); err != nil {
			logger.Warn("enqueue welcome email failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	}

	tokens, err := s.sessions.createSession(ctx, user.ID, input.UserAgent, input.UserIP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return tokens, nil
}
