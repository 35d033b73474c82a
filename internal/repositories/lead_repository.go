package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type LeadRepository interface {
	Create(ctx context.Context, l *models.Lead) (*models.Lead, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context) ([]*models.Lead, error)
	Update(ctx context.Context, l *models.Lead) error
}

type leadRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewLeadRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) LeadRepository {
	return &leadRepository{db: db, health: health, store: store}
}

func (r *leadRepository) Create(ctx context.Context, l *models.Lead) (*models.Lead, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateLead(l), nil
	}
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, translate(err)
	}
	return l, nil
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetLeadByID(id), nil
	}
	var l models.Lead
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leadRepository) List(ctx context.Context) ([]*models.Lead, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListLeads(), nil
	}
	var out []*models.Lead
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *leadRepository) Update(ctx context.Context, l *models.Lead) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateLead(l)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(l).Error)
}
