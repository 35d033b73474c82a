package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type InvestorRepository interface {
	Create(ctx context.Context, inv *models.CommonInvestor) (*models.CommonInvestor, error)
	GetByID(ctx context.Context, id string) (*models.CommonInvestor, error)
	GetByUsername(ctx context.Context, username string) (*models.CommonInvestor, error)
	GetByEmail(ctx context.Context, email string) (*models.CommonInvestor, error)
	List(ctx context.Context) ([]*models.CommonInvestor, error)
	Update(ctx context.Context, inv *models.CommonInvestor) error
	Delete(ctx context.Context, id string) error
}

type investorRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewInvestorRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) InvestorRepository {
	return &investorRepository{db: db, health: health, store: store}
}

func (r *investorRepository) Create(ctx context.Context, inv *models.CommonInvestor) (*models.CommonInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateInvestor(inv), nil
	}
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, translate(err)
	}
	return inv, nil
}

func (r *investorRepository) GetByID(ctx context.Context, id string) (*models.CommonInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetInvestorByID(id), nil
	}
	var inv models.CommonInvestor
	err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *investorRepository) GetByUsername(ctx context.Context, username string) (*models.CommonInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetInvestorByUsername(username), nil
	}
	var inv models.CommonInvestor
	err := r.db.WithContext(ctx).First(&inv, "lower(username) = lower(?)", username).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *investorRepository) GetByEmail(ctx context.Context, email string) (*models.CommonInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetInvestorByEmail(email), nil
	}
	var inv models.CommonInvestor
	err := r.db.WithContext(ctx).First(&inv, "lower(email) = lower(?)", email).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *investorRepository) List(ctx context.Context) ([]*models.CommonInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListInvestors(), nil
	}
	var out []*models.CommonInvestor
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *investorRepository) Update(ctx context.Context, inv *models.CommonInvestor) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateInvestor(inv)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(inv).Error)
}

func (r *investorRepository) Delete(ctx context.Context, id string) error {
	if r.health.DemoMode(ctx) {
		r.store.DeleteInvestor(id)
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.CommonInvestor{}, "id = ?", id).Error
}
