package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type CampaignRepository interface {
	Create(ctx context.Context, c *models.EmailCampaign) (*models.EmailCampaign, error)
	GetByID(ctx context.Context, id string) (*models.EmailCampaign, error)
	List(ctx context.Context) ([]*models.EmailCampaign, error)
	Update(ctx context.Context, c *models.EmailCampaign) error
	Delete(ctx context.Context, id string) error
}

type campaignRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewCampaignRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) CampaignRepository {
	return &campaignRepository{db: db, health: health, store: store}
}

func (r *campaignRepository) Create(ctx context.Context, c *models.EmailCampaign) (*models.EmailCampaign, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateCampaign(c), nil
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.EmailCampaign, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetCampaignByID(id), nil
	}
	var c models.EmailCampaign
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *campaignRepository) List(ctx context.Context) ([]*models.EmailCampaign, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListCampaigns(), nil
	}
	var out []*models.EmailCampaign
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *campaignRepository) Update(ctx context.Context, c *models.EmailCampaign) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateCampaign(c)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	if r.health.DemoMode(ctx) {
		r.store.DeleteCampaign(id)
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.EmailCampaign{}, "id = ?", id).Error
}
