package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/you/beautyauthsvc/domain"
)

// ProfileRepositoryImpl implements domain.ProfileRepository using GORM
type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// DBProfile represents the database model for BeautyProfile. One row per
// user; nullable columns stay NULL until the user sets them.
type DBProfile struct {
	UserID          uint    `gorm:"primaryKey"`
	PersonalColor   *string `gorm:"size:32"`
	SkinUndertone   *string `gorm:"size:16"`
	SkinType        *string `gorm:"size:16"`
	ContrastLevel   *string `gorm:"size:16"`
	PreferredFinish *string `gorm:"size:16"`
	PreferredStore  *string `gorm:"size:16"`
	PriceRangeMin   *int
	PriceRangeMax   *int
	Preferences     datatypes.JSONMap
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBProfile) TableName() string {
	return "beauty_profiles"
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *domain.BeautyProfile) error {
	row := r.domainToDB(profile)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProfileExists
		}
		return err
	}
	profile.CreatedAt = row.CreatedAt
	profile.UpdatedAt = row.UpdatedAt
	return nil
}

// FindByUserID implements domain.ProfileRepository
func (r *ProfileRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.BeautyProfile, error) {
	var row DBProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&row), nil
}

// UpdateFields implements domain.ProfileRepository. Only the supplied
// columns are written, in a single UPDATE, so a rejected update never
// leaves a half-applied row behind.
func (r *ProfileRepositoryImpl) UpdateFields(ctx context.Context, userID uint, columns map[string]interface{}) (*domain.BeautyProfile, error) {
	values := make(map[string]interface{}, len(columns)+1)
	for k, v := range columns {
		if k == "preferences" {
			if m, ok := v.(map[string]interface{}); ok {
				v = datatypes.JSONMap(m)
			}
		}
		values[k] = v
	}
	values["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&DBProfile{}).
		Where("user_id = ?", userID).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.FindByUserID(ctx, userID)
}

func (r *ProfileRepositoryImpl) domainToDB(profile *domain.BeautyProfile) *DBProfile {
	prefs := datatypes.JSONMap{}
	for k, v := range profile.Preferences {
		prefs[k] = v
	}
	return &DBProfile{
		UserID:          profile.UserID,
		PersonalColor:   profile.PersonalColor,
		SkinUndertone:   profile.SkinUndertone,
		SkinType:        profile.SkinType,
		ContrastLevel:   profile.ContrastLevel,
		PreferredFinish: profile.PreferredFinish,
		PreferredStore:  profile.PreferredStore,
		PriceRangeMin:   profile.PriceRangeMin,
		PriceRangeMax:   profile.PriceRangeMax,
		Preferences:     prefs,
	}
}

func (r *ProfileRepositoryImpl) dbToDomain(row *DBProfile) *domain.BeautyProfile {
	prefs := map[string]interface{}{}
	for k, v := range row.Preferences {
		prefs[k] = v
	}
	return &domain.BeautyProfile{
		UserID:          row.UserID,
		PersonalColor:   row.PersonalColor,
		SkinUndertone:   row.SkinUndertone,
		SkinType:        row.SkinType,
		ContrastLevel:   row.ContrastLevel,
		PreferredFinish: row.PreferredFinish,
		PreferredStore:  row.PreferredStore,
		PriceRangeMin:   row.PriceRangeMin,
		PriceRangeMax:   row.PriceRangeMax,
		Preferences:     prefs,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
