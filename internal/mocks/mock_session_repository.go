package mocks

import (
	"context"
	"time"

	"github.com/you/beautyauthsvc/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	StartFunc         func(ctx context.Context, userID uint) (*domain.Session, error)
	RotateFunc        func(ctx context.Context, token string) (*domain.Session, error)
	RevokeFunc        func(ctx context.Context, token string) error
	RevokeAllFunc     func(ctx context.Context, userID uint) error
	DeleteExpiredFunc func(ctx context.Context) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Start(ctx context.Context, userID uint) (*domain.Session, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, userID)
	}
	return &domain.Session{
		ID:        "mock-session",
		UserID:    userID,
		Token:     "mock-refresh-token",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}, nil
}

func (m *MockSessionRepository) Rotate(ctx context.Context, token string) (*domain.Session, error) {
	if m.RotateFunc != nil {
		return m.RotateFunc(ctx, token)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}

func (m *MockSessionRepository) RevokeAll(ctx context.Context, userID uint) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}
