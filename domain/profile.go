package domain

import "time"

// BeautyProfile is the per-user attribute aggregate. Every attribute except
// the seasonal color and undertone is optional; nil means "never set".
// There is exactly one profile row per user.
type BeautyProfile struct {
	UserID          uint                   `json:"user_id"`
	PersonalColor   *string                `json:"personal_color"`
	SkinUndertone   *string                `json:"skin_undertone"`
	SkinType        *string                `json:"skin_type"`
	ContrastLevel   *string                `json:"contrast_level"`
	PreferredFinish *string                `json:"preferred_finish"`
	PreferredStore  *string                `json:"preferred_store"`
	PriceRangeMin   *int                   `json:"price_range_min"`
	PriceRangeMax   *int                   `json:"price_range_max"`
	Preferences     map[string]interface{} `json:"preferences"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// Seasonal color analysis types
var PersonalColorTypes = []string{
	"bright_spring", "true_spring", "light_spring",
	"light_summer", "true_summer", "soft_summer",
	"soft_autumn", "true_autumn", "deep_autumn",
	"deep_winter", "true_winter", "bright_winter",
}

var SkinUndertones = []string{"warm", "cool", "neutral"}

var SkinTypes = []string{"oily", "dry", "combination", "sensitive"}

var ContrastLevels = []string{"high", "medium", "low"}

var PreferredFinishes = []string{"matte", "glossy", "satin", "velvet", "dewy"}

var PreferredStores = []string{"roadshop", "department", "online", "luxury"}

// IsOneOf reports whether value is a member of the allowed set.
func IsOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
