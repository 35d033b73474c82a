package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, t *models.PasswordResetToken) (*models.PasswordResetToken, error)
	GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	// MarkUsed consumes the token. The row is kept as an audit record.
	MarkUsed(ctx context.Context, token string) error
}

type passwordResetRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewPasswordResetRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) PasswordResetRepository {
	return &passwordResetRepository{db: db, health: health, store: store}
}

func (r *passwordResetRepository) Create(ctx context.Context, t *models.PasswordResetToken) (*models.PasswordResetToken, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateResetToken(t), nil
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *passwordResetRepository) GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetResetToken(token), nil
	}
	var t models.PasswordResetToken
	err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepository) MarkUsed(ctx context.Context, token string) error {
	if r.health.DemoMode(ctx) {
		r.store.MarkResetTokenUsed(token)
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.PasswordResetToken{}).
		Where("token = ?", token).
		Update("used", true).Error
}
