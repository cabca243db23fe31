package mocks

import (
	"context"

	"github.com/you/beautyauthsvc/domain"
)

// MockAuthService implements domain.AuthService for testing handlers
type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, email, username, password string) (*domain.User, error)
	LoginFunc       func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc     func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc      func(ctx context.Context, refreshToken string) error
	GetIdentityFunc func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, username, password)
	}
	return &domain.User{ID: 1, Email: email, Username: username, IsActive: true}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken)
	}
	return nil
}

func (m *MockAuthService) GetIdentity(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetIdentityFunc != nil {
		return m.GetIdentityFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
