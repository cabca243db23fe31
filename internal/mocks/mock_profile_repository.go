package mocks

import (
	"context"

	"github.com/you/beautyauthsvc/domain"
)

// MockProfileRepository implements domain.ProfileRepository for testing
type MockProfileRepository struct {
	CreateFunc       func(ctx context.Context, profile *domain.BeautyProfile) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.BeautyProfile, error)
	UpdateFieldsFunc func(ctx context.Context, userID uint, columns map[string]interface{}) (*domain.BeautyProfile, error)
}

// NewMockProfileRepository creates a new MockProfileRepository with default behaviors
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.BeautyProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*domain.BeautyProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProfileRepository) UpdateFields(ctx context.Context, userID uint, columns map[string]interface{}) (*domain.BeautyProfile, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, userID, columns)
	}
	return nil, domain.ErrProfileNotFound
}

// MockProfileCache implements domain.ProfileCache for testing
type MockProfileCache struct {
	GetFunc        func(ctx context.Context, userID uint) (*domain.BeautyProfile, error)
	SetFunc        func(ctx context.Context, profile *domain.BeautyProfile) error
	InvalidateFunc func(ctx context.Context, userID uint) error
}

// NewMockProfileCache creates a new MockProfileCache with default behaviors
func NewMockProfileCache() *MockProfileCache {
	return &MockProfileCache{}
}

func (m *MockProfileCache) Get(ctx context.Context, userID uint) (*domain.BeautyProfile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockProfileCache) Set(ctx context.Context, profile *domain.BeautyProfile) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, profile)
	}
	return nil
}

func (m *MockProfileCache) Invalidate(ctx context.Context, userID uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}
