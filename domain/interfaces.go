package domain

import "context"

// UserRepository defines identity data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	TouchLastLogin(ctx context.Context, id uint) error
}

// SessionRepository defines refresh-session data access operations.
// A user holds at most one live session; Start replaces any prior one.
type SessionRepository interface {
	Start(ctx context.Context, userID uint) (*Session, error)
	Rotate(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// ProfileRepository defines beauty profile data access operations.
// UpdateFields takes a map of column name to value and touches only
// those columns.
type ProfileRepository interface {
	Create(ctx context.Context, profile *BeautyProfile) error
	FindByUserID(ctx context.Context, userID uint) (*BeautyProfile, error)
	UpdateFields(ctx context.Context, userID uint, columns map[string]interface{}) (*BeautyProfile, error)
}

// ProfileCache is a read-through cache over ProfileRepository reads
type ProfileCache interface {
	Get(ctx context.Context, userID uint) (*BeautyProfile, error)
	Set(ctx context.Context, profile *BeautyProfile) error
	Invalidate(ctx context.Context, userID uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	GetIdentity(ctx context.Context, userID uint) (*User, error)
}

// ProfileService defines beauty profile business logic. Create and Update
// accept the raw field map from the caller; values are validated against
// each field's enum or range before anything is written.
type ProfileService interface {
	Get(ctx context.Context, userID uint) (*BeautyProfile, error)
	Create(ctx context.Context, userID uint, fields map[string]interface{}) (*BeautyProfile, error)
	Update(ctx context.Context, userID uint, fields map[string]interface{}) (*BeautyProfile, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations
type TokenService interface {
	GenerateAccessToken(userID uint) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	AccessTTLSeconds() int64
}
