package services

import (
	"context"
	"fmt"

	"github.com/you/beautyauthsvc/domain"
	"github.com/you/beautyauthsvc/pkg/log"
)

// profileColumns maps the caller-facing field names onto table columns.
// A key missing from this map is an unknown field and rejects the request.
var profileColumns = map[string]string{
	"personalColor":   "personal_color",
	"skinUndertone":   "skin_undertone",
	"skinType":        "skin_type",
	"contrastLevel":   "contrast_level",
	"preferredFinish": "preferred_finish",
	"preferredStore":  "preferred_store",
	"priceRangeMin":   "price_range_min",
	"priceRangeMax":   "price_range_max",
	"preferences":     "preferences",
}

// enum constraints per field; price fields and preferences validate by type
var profileEnums = map[string][]string{
	"personalColor":   domain.PersonalColorTypes,
	"skinUndertone":   domain.SkinUndertones,
	"skinType":        domain.SkinTypes,
	"contrastLevel":   domain.ContrastLevels,
	"preferredFinish": domain.PreferredFinishes,
	"preferredStore":  domain.PreferredStores,
}

// ProfileServiceImpl implements domain.ProfileService
type ProfileServiceImpl struct {
	profileRepo domain.ProfileRepository
	cache       domain.ProfileCache
	logger      log.Logger
}

// NewProfileService creates a new profile service. The cache is optional;
// a nil cache turns every read into a repository read.
func NewProfileService(profileRepo domain.ProfileRepository, cache domain.ProfileCache, logger log.Logger) domain.ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Get implements domain.ProfileService
func (s *ProfileServiceImpl) Get(ctx context.Context, userID uint) (*domain.BeautyProfile, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn().Uint("user_id", userID).Err(err).Msg("profile cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.prime(ctx, profile)
	return profile, nil
}

// Create implements domain.ProfileService. The seasonal color and the skin
// undertone are mandatory; everything else starts unset unless supplied.
func (s *ProfileServiceImpl) Create(ctx context.Context, userID uint, fields map[string]interface{}) (*domain.BeautyProfile, error) {
	if _, ok := fields["personalColor"]; !ok {
		return nil, domain.ErrMissingProfileFields
	}
	if _, ok := fields["skinUndertone"]; !ok {
		return nil, domain.ErrMissingProfileFields
	}

	profile := &domain.BeautyProfile{
		UserID:      userID,
		Preferences: map[string]interface{}{},
	}

	for key, value := range fields {
		normalized, err := validateProfileField(key, value)
		if err != nil {
			return nil, err
		}
		applyProfileField(profile, key, normalized)
	}

	if profile.PersonalColor == nil || profile.SkinUndertone == nil {
		return nil, domain.ErrMissingProfileFields
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", userID).Msg("beauty profile created")
	s.prime(ctx, profile)
	return profile, nil
}

// Update implements domain.ProfileService. Absent keys are left alone;
// present keys are validated up front and written in one statement, so a
// bad value anywhere rejects the whole update with the row untouched.
func (s *ProfileServiceImpl) Update(ctx context.Context, userID uint, fields map[string]interface{}) (*domain.BeautyProfile, error) {
	if len(fields) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	columns := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		normalized, err := validateProfileField(key, value)
		if err != nil {
			return nil, err
		}
		columns[profileColumns[key]] = normalized
	}

	profile, err := s.profileRepo.UpdateFields(ctx, userID, columns)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			s.logger.Warn().Uint("user_id", userID).Err(err).Msg("profile cache invalidation failed")
		}
	}
	s.prime(ctx, profile)

	return profile, nil
}

// prime is a best-effort cache refresh; failures only cost a later read
func (s *ProfileServiceImpl) prime(ctx context.Context, profile *domain.BeautyProfile) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, profile); err != nil {
		s.logger.Warn().Uint("user_id", profile.UserID).Err(err).Msg("profile cache write failed")
	}
}

// validateProfileField checks a single field against its enum or range and
// returns the value in storable form. An explicit null clears an optional
// field; the two mandatory fields cannot be cleared.
func validateProfileField(key string, value interface{}) (interface{}, error) {
	if _, known := profileColumns[key]; !known {
		return nil, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidProfileField, key)
	}

	if value == nil {
		if key == "personalColor" || key == "skinUndertone" {
			return nil, fmt.Errorf("%w: %s cannot be null", domain.ErrInvalidProfileField, key)
		}
		if key == "preferences" {
			return map[string]interface{}{}, nil
		}
		return nil, nil
	}

	if allowed, isEnum := profileEnums[key]; isEnum {
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string", domain.ErrInvalidProfileField, key)
		}
		if !domain.IsOneOf(str, allowed) {
			return nil, fmt.Errorf("%w: %q is not a valid %s", domain.ErrInvalidProfileField, str, key)
		}
		return str, nil
	}

	switch key {
	case "priceRangeMin", "priceRangeMax":
		n, err := asNonNegativeInt(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %v", domain.ErrInvalidProfileField, key, err)
		}
		return n, nil
	case "preferences":
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: preferences must be an object", domain.ErrInvalidProfileField)
		}
		return m, nil
	}

	return nil, fmt.Errorf("%w: unknown field %q", domain.ErrInvalidProfileField, key)
}

// asNonNegativeInt accepts the integer shapes JSON decoding produces
func asNonNegativeInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return 0, fmt.Errorf("must not be negative")
		}
		return v, nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("must not be negative")
		}
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("must be a whole number")
		}
		if v < 0 {
			return 0, fmt.Errorf("must not be negative")
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("must be a number")
	}
}

// applyProfileField sets an already-validated value on the aggregate
func applyProfileField(profile *domain.BeautyProfile, key string, normalized interface{}) {
	setStr := func(dst **string) {
		if normalized == nil {
			*dst = nil
			return
		}
		s := normalized.(string)
		*dst = &s
	}
	setInt := func(dst **int) {
		if normalized == nil {
			*dst = nil
			return
		}
		n := normalized.(int)
		*dst = &n
	}

	switch key {
	case "personalColor":
		setStr(&profile.PersonalColor)
	case "skinUndertone":
		setStr(&profile.SkinUndertone)
	case "skinType":
		setStr(&profile.SkinType)
	case "contrastLevel":
		setStr(&profile.ContrastLevel)
	case "preferredFinish":
		setStr(&profile.PreferredFinish)
	case "preferredStore":
		setStr(&profile.PreferredStore)
	case "priceRangeMin":
		setInt(&profile.PriceRangeMin)
	case "priceRangeMax":
		setInt(&profile.PriceRangeMax)
	case "preferences":
		profile.Preferences = normalized.(map[string]interface{})
	}
}
