package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

// AdminRepository backs the explicit admin_users table. Admin standing is
// decided by rows here, never by special-casing a username.
type AdminRepository interface {
	Create(ctx context.Context, a *models.AdminUser) (*models.AdminUser, error)
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	List(ctx context.Context) ([]*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewAdminRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) AdminRepository {
	return &adminRepository{db: db, health: health, store: store}
}

func (r *adminRepository) Create(ctx context.Context, a *models.AdminUser) (*models.AdminUser, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateAdmin(a), nil
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetAdminByID(id), nil
	}
	var a models.AdminUser
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetAdminByUsername(username), nil
	}
	var a models.AdminUser
	err := r.db.WithContext(ctx).First(&a, "lower(username) = lower(?)", username).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListAdmins(), nil
	}
	var out []*models.AdminUser
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	if r.health.DemoMode(ctx) {
		return int64(len(r.store.ListAdmins())), nil
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
