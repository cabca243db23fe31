package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/beautyauthsvc/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBSession{}, &DBProfile{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Email:        "a@b.com",
		Username:     "Alice",
		PasswordHash: "hashed_secret123",
		IsActive:     true,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected Create to backfill the generated ID")
	}

	byEmail, err := repo.FindByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if byEmail.Username != "Alice" || byEmail.PasswordHash != "hashed_secret123" {
		t.Errorf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Email != "a@b.com" {
		t.Errorf("unexpected user: %+v", byID)
	}
}

func TestUserRepositoryImpl_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Email: "a@b.com", Username: "Alice", PasswordHash: "h", IsActive: true}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	second := &domain.User{Email: "a@b.com", Username: "Mallory", PasswordHash: "h", IsActive: true}
	err := repo.Create(ctx, second)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepositoryImpl_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "missing@b.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 12345); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("ExistsByEmail returned error: %v", err)
	}
	if exists {
		t.Error("expected no user yet")
	}

	if err := repo.Create(ctx, &domain.User{Email: "a@b.com", Username: "Alice", PasswordHash: "h", IsActive: true}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	exists, err = repo.ExistsByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("ExistsByEmail returned error: %v", err)
	}
	if !exists {
		t.Error("expected user to exist")
	}
}

func TestUserRepositoryImpl_TouchLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Email: "a@b.com", Username: "Alice", PasswordHash: "h", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	before := time.Now().Add(-time.Second)
	if err := repo.TouchLastLogin(ctx, user.ID); err != nil {
		t.Fatalf("TouchLastLogin returned error: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.LastLoginAt == nil {
		t.Fatal("expected LastLoginAt to be set")
	}
	if got.LastLoginAt.Before(before) {
		t.Errorf("LastLoginAt %v not updated", got.LastLoginAt)
	}
}
