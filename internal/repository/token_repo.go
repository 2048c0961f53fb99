package repository

import (
	"context"
	"time"

	"smart-sales-api/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Blacklist(ctx context.Context, token *model.BlacklistedToken) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type tokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) TokenRepository {
	return &tokenRepo{db}
}

// Blacklist stores the jti; a second blacklist of the same jti yields ErrDuplicate
func (r *tokenRepo) Blacklist(ctx context.Context, token *model.BlacklistedToken) error {
	return translateError(r.db.WithContext(ctx).Create(token).Error)
}

func (r *tokenRepo) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

// DeleteExpired drops entries whose token could no longer be used anyway
func (r *tokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.BlacklistedToken{})
	return result.RowsAffected, result.Error
}
