package services

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/you/beautyauthsvc/domain"
	"github.com/you/beautyauthsvc/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies;
// nil arguments get default mocks
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}

	return NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, zerolog.Nop())
}

// createProfileServiceForTest creates a ProfileService with mock dependencies
func createProfileServiceForTest(t *testing.T,
	profileRepo domain.ProfileRepository,
	cache domain.ProfileCache) domain.ProfileService {
	t.Helper()

	if profileRepo == nil {
		profileRepo = mocks.NewMockProfileRepository()
	}

	return NewProfileService(profileRepo, cache, zerolog.Nop())
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           1,
		Email:        "a@b.com",
		Username:     "Alice",
		PasswordHash: "hashed_secret123",
		IsActive:     true,
	}
}
