package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type OfferRepository interface {
	Create(ctx context.Context, o *models.Offer) (*models.Offer, error)
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	// List filters by property and/or investor; empty strings match all.
	List(ctx context.Context, propertyID, investorID string) ([]*models.Offer, error)
	Update(ctx context.Context, o *models.Offer) error
}

type offerRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewOfferRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) OfferRepository {
	return &offerRepository{db: db, health: health, store: store}
}

func (r *offerRepository) Create(ctx context.Context, o *models.Offer) (*models.Offer, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateOffer(o), nil
	}
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, translate(err)
	}
	return o, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetOfferByID(id), nil
	}
	var o models.Offer
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepository) List(ctx context.Context, propertyID, investorID string) ([]*models.Offer, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListOffers(propertyID, investorID), nil
	}
	q := r.db.WithContext(ctx).Order("created_at desc")
	if propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}
	if investorID != "" {
		q = q.Where("investor_id = ?", investorID)
	}
	var out []*models.Offer
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *offerRepository) Update(ctx context.Context, o *models.Offer) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateOffer(o)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(o).Error)
}
