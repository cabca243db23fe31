package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/you/beautyauthsvc/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedProfile(t *testing.T, repo domain.ProfileRepository, userID uint) *domain.BeautyProfile {
	t.Helper()
	profile := &domain.BeautyProfile{
		UserID:        userID,
		PersonalColor: strPtr("bright_spring"),
		SkinUndertone: strPtr("warm"),
		Preferences:   map[string]interface{}{"brands": []interface{}{"roadshop-a"}},
	}
	if err := repo.Create(context.Background(), profile); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return profile
}

func TestProfileRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	seedProfile(t, repo, 1)

	got, err := repo.FindByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByUserID returned error: %v", err)
	}
	if got.PersonalColor == nil || *got.PersonalColor != "bright_spring" {
		t.Errorf("personal color not persisted: %+v", got)
	}
	if got.SkinType != nil {
		t.Error("unset optional field must stay nil")
	}
	if got.Preferences["brands"] == nil {
		t.Error("preferences map not persisted")
	}
}

func TestProfileRepositoryImpl_CreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	seedProfile(t, repo, 1)

	err := repo.Create(context.Background(), &domain.BeautyProfile{
		UserID:        1,
		PersonalColor: strPtr("true_winter"),
		SkinUndertone: strPtr("cool"),
	})
	if !errors.Is(err, domain.ErrProfileExists) {
		t.Errorf("expected ErrProfileExists, got %v", err)
	}
}

func TestProfileRepositoryImpl_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	if _, err := repo.FindByUserID(context.Background(), 999); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileRepositoryImpl_UpdateFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	seedProfile(t, repo, 1)

	updated, err := repo.UpdateFields(ctx, 1, map[string]interface{}{
		"price_range_min": 10000,
		"price_range_max": 30000,
	})
	if err != nil {
		t.Fatalf("UpdateFields returned error: %v", err)
	}

	// Supplied columns changed.
	if updated.PriceRangeMin == nil || *updated.PriceRangeMin != 10000 {
		t.Errorf("price_range_min not updated: %+v", updated.PriceRangeMin)
	}
	if updated.PriceRangeMax == nil || *updated.PriceRangeMax != 30000 {
		t.Errorf("price_range_max not updated: %+v", updated.PriceRangeMax)
	}
	// Untouched columns kept their values.
	if updated.PersonalColor == nil || *updated.PersonalColor != "bright_spring" {
		t.Error("personal_color was clobbered by an unrelated update")
	}
	if updated.SkinUndertone == nil || *updated.SkinUndertone != "warm" {
		t.Error("skin_undertone was clobbered by an unrelated update")
	}
}

func TestProfileRepositoryImpl_UpdateClearsWithNull(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	seedProfile(t, repo, 1)

	if _, err := repo.UpdateFields(ctx, 1, map[string]interface{}{"skin_type": "oily"}); err != nil {
		t.Fatalf("UpdateFields returned error: %v", err)
	}
	updated, err := repo.UpdateFields(ctx, 1, map[string]interface{}{"skin_type": nil})
	if err != nil {
		t.Fatalf("UpdateFields returned error: %v", err)
	}
	if updated.SkinType != nil {
		t.Errorf("expected skin_type cleared, got %v", *updated.SkinType)
	}
}

func TestProfileRepositoryImpl_UpdateMissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)

	_, err := repo.UpdateFields(context.Background(), 42, map[string]interface{}{"skin_type": "dry"})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}
