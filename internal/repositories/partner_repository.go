package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type PartnerRepository interface {
	Create(ctx context.Context, p *models.Partner) (*models.Partner, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	GetByUsername(ctx context.Context, username string) (*models.Partner, error)
	GetByEmail(ctx context.Context, email string) (*models.Partner, error)
	List(ctx context.Context, status models.ApprovalStatus) ([]*models.Partner, error)
	Update(ctx context.Context, p *models.Partner) error
}

type partnerRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewPartnerRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) PartnerRepository {
	return &partnerRepository{db: db, health: health, store: store}
}

func (r *partnerRepository) Create(ctx context.Context, p *models.Partner) (*models.Partner, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreatePartner(p), nil
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetPartnerByID(id), nil
	}
	var p models.Partner
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) GetByUsername(ctx context.Context, username string) (*models.Partner, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetPartnerByUsername(username), nil
	}
	var p models.Partner
	err := r.db.WithContext(ctx).First(&p, "lower(username) = lower(?)", username).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) GetByEmail(ctx context.Context, email string) (*models.Partner, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetPartnerByEmail(email), nil
	}
	var p models.Partner
	err := r.db.WithContext(ctx).First(&p, "lower(email) = lower(?)", email).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) List(ctx context.Context, status models.ApprovalStatus) ([]*models.Partner, error) {
	if r.health.DemoMode(ctx) {
		all := r.store.ListPartners()
		if status == "" {
			return all, nil
		}
		out := all[:0]
		for _, p := range all {
			if p.ApprovalStatus == status {
				out = append(out, p)
			}
		}
		return out, nil
	}
	q := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("approval_status = ?", status)
	}
	var out []*models.Partner
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *partnerRepository) Update(ctx context.Context, p *models.Partner) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdatePartner(p)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(p).Error)
}
