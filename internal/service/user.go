package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/repository"
	"github.com/skyticket/backend/pkg/auth"
	"github.com/skyticket/backend/pkg/hash"

	"github.com/google/uuid"
)

type userService struct {
	userRepository           repository.Users
	refreshSessionRepository repository.RefreshSession
	hasher                   hash.PasswordHasher
	tokenManager             auth.TokenManager
}

func newUserService(userRepository repository.Users,
	refreshSessionRepository repository.RefreshSession,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
) *userService {
	return &userService{
		userRepository:           userRepository,
		refreshSessionRepository: refreshSessionRepository,
		hasher:                   hasher,
		tokenManager:             tokenManager,
	}
}

func (s *userService) createSession(ctx context.Context, userID uuid.UUID, userAgent, userIP string) (*Tokens, error) {
	var (
		res Tokens
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate refresh session id failed: %w", err)
	}
	refreshSession := &domain.RefreshSession{
		ID:           refreshSessionID,
		UserID:       userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    userAgent,
		IP:           userIP,
		ExpiresIn:    time.Now().Add(res.RefreshTTL),
	}

	if err := s.refreshSessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

// Login checks the user name and password pair. Unknown users and wrong passwords
// produce the same error.
func (s *userService) Login(ctx context.Context, userName, password, userAgent, userIP string) (*Tokens, error) {
	user, err := s.userRepository.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by user name failed: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password failed: %w", err)
	}

	return s.createSession(ctx, user.ID, userAgent, userIP)
}

// Refresh rotates a refresh token: the old session is removed and a new pair is issued.
func (s *userService) Refresh(ctx context.Context, refreshToken, userAgent, userIP string) (*Tokens, error) {
	token, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	session, err := s.refreshSessionRepository.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("get refresh session failed: %w", err)
	}

	if err := s.refreshSessionRepository.Delete(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("delete refresh session failed: %w", err)
	}

	if session.IsExpired(time.Now()) {
		return nil, ErrRefreshTokenExpired
	}

	return s.createSession(ctx, session.UserID, userAgent, userIP)
}

func (s *userService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	token, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}

	if err := s.refreshSessionRepository.DeleteByToken(ctx, userID, token); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInvalidRefreshToken
		}
		return fmt.Errorf("delete refresh session failed: %w", err)
	}

	return nil
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, requesterID, userID uuid.UUID, profile domain.UserProfile) (*domain.User, error) {
	if err := authorizeOwner(requesterID, userID); err != nil {
		return nil, err
	}

	if err := s.userRepository.UpdateProfile(ctx, userID, profile); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry):
			return nil, ErrEmailTaken
		case errors.Is(err, domain.ErrNoRowsAffected):
			// MySQL reports zero rows when nothing changed, so tell that apart from a missing user.
			return s.GetOneByID(ctx, userID)
		default:
			return nil, fmt.Errorf("update profile failed: %w", err)
		}
	}

	return s.GetOneByID(ctx, userID)
}

// ChangePassword replaces the password and signs the user out everywhere.
func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := s.GetOneByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.Password, oldPassword); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("compare password failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}

	// sessions opened with the old password must not outlive it
	if err := s.refreshSessionRepository.DeleteAllByUserID(ctx, userID); err != nil {
		return fmt.Errorf("revoke refresh sessions failed: %w", err)
	}

	return nil
}
