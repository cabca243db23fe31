package repositories

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/beautyauthsvc/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM.
// Refresh tokens are opaque random values: a token is valid only while its
// row is live, which is what makes server-side revocation effective.
type SessionRepositoryImpl struct {
	db  *gorm.DB
	ttl time.Duration
}

// DBSession represents the database model for Session. The unique index on
// user_id enforces the single-live-session rule: Start upserts on it rather
// than appending rows.
type DBSession struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"uniqueIndex"`
	Token     string `gorm:"uniqueIndex;size:64"`
	IssuedAt  time.Time
	ExpiresAt time.Time `gorm:"index"`
	Revoked   bool
}

// TableName returns the table name for GORM
func (DBSession) TableName() string {
	return "sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB, ttl time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db, ttl: ttl}
}

// newToken generates an opaque 256-bit refresh token value
func newToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Start implements domain.SessionRepository
func (r *SessionRepositoryImpl) Start(ctx context.Context, userID uint) (*domain.Session, error) {
	return r.startTx(r.db.WithContext(ctx), userID)
}

func (r *SessionRepositoryImpl) startTx(tx *gorm.DB, userID uint) (*domain.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	row := &DBSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(r.ttl),
		Revoked:   false,
	}

	// Replace any prior session for this user instead of appending.
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"id", "token", "issued_at", "expires_at", "revoked"}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	return r.dbToDomain(row), nil
}

// Rotate implements domain.SessionRepository. The revoke is conditional on
// the row still being live, so of two concurrent rotations of the same
// token exactly one succeeds; the loser and any later replay see a revoked
// session.
func (r *SessionRepositoryImpl) Rotate(ctx context.Context, token string) (*domain.Session, error) {
	var rotated *domain.Session

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row DBSession
		if err := tx.Where("token = ?", token).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSessionNotFound
			}
			return err
		}
		if row.Revoked {
			return domain.ErrSessionRevoked
		}
		if row.ExpiresAt.Before(time.Now()) {
			return domain.ErrSessionExpired
		}

		res := tx.Model(&DBSession{}).
			Where("token = ? AND revoked = ? AND expires_at > ?", token, false, time.Now()).
			Update("revoked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			// Lost the race against a concurrent rotation of the same token.
			return domain.ErrSessionRevoked
		}

		next, err := r.startTx(tx, row.UserID)
		if err != nil {
			return err
		}
		rotated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rotated, nil
}

// Revoke implements domain.SessionRepository. Revoking an absent or
// already-revoked token is not an error.
func (r *SessionRepositoryImpl) Revoke(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Model(&DBSession{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

// RevokeAll implements domain.SessionRepository
func (r *SessionRepositoryImpl) RevokeAll(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBSession{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}

// DeleteExpired implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&DBSession{}).Error
}

func (r *SessionRepositoryImpl) dbToDomain(row *DBSession) *domain.Session {
	return &domain.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		Token:     row.Token,
		IssuedAt:  row.IssuedAt,
		ExpiresAt: row.ExpiresAt,
		Revoked:   row.Revoked,
	}
}
