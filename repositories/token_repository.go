// File: /repositories/token_repository.go
package repositories

import (
	"errors"
	"time"

	"autosales-api/models"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Blacklist records a token revoked by logout. Re-blacklisting the
// same token is not an error.
func (r *TokenRepository) Blacklist(token *models.BlacklistedToken) error {
	if err := r.db.Create(token).Error; err != nil {
		translated := translateError("blacklisted_token", 0, err)
		var constraintErr *ConstraintError
		if errors.As(translated, &constraintErr) {
			// Duplicate jti: the token is already revoked.
			return nil
		}
		return translated
	}
	return nil
}

// IsBlacklisted reports whether the token with the given JWT ID was
// revoked.
func (r *TokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error
	if err != nil {
		return false, translateError("blacklisted_token", 0, err)
	}
	return count > 0, nil
}

// PurgeExpired drops blacklist rows whose tokens have expired on their
// own and returns how many were removed.
func (r *TokenRepository) PurgeExpired() (int64, error) {
	res := r.db.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{})
	if res.Error != nil {
		return 0, translateError("blacklisted_token", 0, res.Error)
	}
	return res.RowsAffected, nil
}
