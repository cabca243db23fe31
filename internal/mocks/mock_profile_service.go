package mocks

import (
	"context"

	"github.com/you/beautyauthsvc/domain"
)

// MockProfileService implements domain.ProfileService for testing handlers
type MockProfileService struct {
	GetFunc    func(ctx context.Context, userID uint) (*domain.BeautyProfile, error)
	CreateFunc func(ctx context.Context, userID uint, fields map[string]interface{}) (*domain.BeautyProfile, error)
	UpdateFunc func(ctx context.Context, userID uint, fields map[string]interface{}) (*domain.BeautyProfile, error)
}

// NewMockProfileService creates a new MockProfileService with default behaviors
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{}
}

func (m *MockProfileService) Get(ctx context.Context, userID uint) (*domain.BeautyProfile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProfileService) Create(ctx context.Context, userID uint, fields map[string]interface{}) (*domain.BeautyProfile, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, fields)
	}
	return nil, domain.ErrProfileExists
}

func (m *MockProfileService) Update(ctx context.Context, userID uint, fields map[string]interface{}) (*domain.BeautyProfile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, fields)
	}
	return nil, domain.ErrProfileNotFound
}
