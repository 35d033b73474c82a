package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type InstitutionalRepository interface {
	Create(ctx context.Context, ii *models.InstitutionalInvestor) (*models.InstitutionalInvestor, error)
	GetByID(ctx context.Context, id string) (*models.InstitutionalInvestor, error)
	GetByUsername(ctx context.Context, username string) (*models.InstitutionalInvestor, error)
	GetByEmail(ctx context.Context, email string) (*models.InstitutionalInvestor, error)
	List(ctx context.Context, status models.ApprovalStatus) ([]*models.InstitutionalInvestor, error)
	Update(ctx context.Context, ii *models.InstitutionalInvestor) error
}

type institutionalRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewInstitutionalRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) InstitutionalRepository {
	return &institutionalRepository{db: db, health: health, store: store}
}

func (r *institutionalRepository) Create(ctx context.Context, ii *models.InstitutionalInvestor) (*models.InstitutionalInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateInstitutional(ii), nil
	}
	if err := r.db.WithContext(ctx).Create(ii).Error; err != nil {
		return nil, translate(err)
	}
	return ii, nil
}

func (r *institutionalRepository) GetByID(ctx context.Context, id string) (*models.InstitutionalInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetInstitutionalByID(id), nil
	}
	var ii models.InstitutionalInvestor
	err := r.db.WithContext(ctx).First(&ii, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ii, nil
}

func (r *institutionalRepository) GetByUsername(ctx context.Context, username string) (*models.InstitutionalInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetInstitutionalByUsername(username), nil
	}
	var ii models.InstitutionalInvestor
	err := r.db.WithContext(ctx).First(&ii, "username IS NOT NULL AND lower(username) = lower(?)", username).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ii, nil
}

func (r *institutionalRepository) GetByEmail(ctx context.Context, email string) (*models.InstitutionalInvestor, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetInstitutionalByEmail(email), nil
	}
	var ii models.InstitutionalInvestor
	err := r.db.WithContext(ctx).First(&ii, "lower(email) = lower(?)", email).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ii, nil
}

// List returns applications, optionally filtered by approval status.
func (r *institutionalRepository) List(ctx context.Context, status models.ApprovalStatus) ([]*models.InstitutionalInvestor, error) {
	if r.health.DemoMode(ctx) {
		all := r.store.ListInstitutional()
		if status == "" {
			return all, nil
		}
		out := all[:0]
		for _, ii := range all {
			if ii.Status == status {
				out = append(out, ii)
			}
		}
		return out, nil
	}
	q := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []*models.InstitutionalInvestor
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *institutionalRepository) Update(ctx context.Context, ii *models.InstitutionalInvestor) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateInstitutional(ii)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(ii).Error)
}
