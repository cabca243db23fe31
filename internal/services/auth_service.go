package services

import (
	"context"
	"fmt"

	"github.com/you/beautyauthsvc/domain"
	"github.com/you/beautyauthsvc/pkg/log"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	logger      log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	logger log.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// Register implements domain.AuthService. Registration does not log the
// user in; no tokens are issued until an explicit Login.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// The unique index on email re-checks the pre-check under concurrency;
	// a racing duplicate surfaces here as ErrEmailTaken.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Uint("user_id", user.ID).Err(err).Msg("failed to record login time")
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	session, err := s.sessionRepo.Start(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user logged in")

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: session.Token,
		ExpiresIn:    s.tokenSvc.AccessTTLSeconds(),
	}, nil
}

// Refresh implements domain.AuthService. The refresh token is resolved
// purely against the session store; it is never decoded or verified as a
// signed token. Rotation is one-time-use: the presented token is dead after
// this call whether it was the legitimate holder's or a replay.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	session, err := s.sessionRepo.Rotate(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: session.Token,
		ExpiresIn:    s.tokenSvc.AccessTTLSeconds(),
	}, nil
}

// Logout implements domain.AuthService. Logout never fails: revoking an
// unknown or already-revoked token is a no-op, and a storage failure is
// logged rather than returned so the client always ends its session.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := s.sessionRepo.Revoke(ctx, refreshToken); err != nil {
		s.logger.Error().Err(err).Msg("failed to revoke session on logout")
	}
	return nil
}

// GetIdentity implements domain.AuthService
func (s *AuthServiceImpl) GetIdentity(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
