package repositories

import (
	"context"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

type ForeclosureRepository interface {
	Create(ctx context.Context, f *models.ForeclosureListing) (*models.ForeclosureListing, error)
	GetByID(ctx context.Context, id string) (*models.ForeclosureListing, error)
	List(ctx context.Context, activeOnly bool) ([]*models.ForeclosureListing, error)
	Update(ctx context.Context, f *models.ForeclosureListing) error
	// Toggle flips is_active and returns the new value; ok is false when the
	// listing does not exist.
	Toggle(ctx context.Context, id string) (active bool, ok bool, err error)
	Deactivate(ctx context.Context, id string) error
}

type foreclosureRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewForeclosureRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) ForeclosureRepository {
	return &foreclosureRepository{db: db, health: health, store: store}
}

func (r *foreclosureRepository) Create(ctx context.Context, f *models.ForeclosureListing) (*models.ForeclosureListing, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateForeclosure(f), nil
	}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, translate(err)
	}
	return f, nil
}

func (r *foreclosureRepository) GetByID(ctx context.Context, id string) (*models.ForeclosureListing, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetForeclosureByID(id), nil
	}
	var f models.ForeclosureListing
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *foreclosureRepository) List(ctx context.Context, activeOnly bool) ([]*models.ForeclosureListing, error) {
	if r.health.DemoMode(ctx) {
		return r.store.ListForeclosures(activeOnly), nil
	}
	q := r.db.WithContext(ctx).Order("created_at desc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []*models.ForeclosureListing
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *foreclosureRepository) Update(ctx context.Context, f *models.ForeclosureListing) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateForeclosure(f)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(f).Error)
}

func (r *foreclosureRepository) Toggle(ctx context.Context, id string) (bool, bool, error) {
	if r.health.DemoMode(ctx) {
		active, ok := r.store.ToggleForeclosure(id)
		return active, ok, nil
	}
	var f models.ForeclosureListing
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if isNotFound(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	f.IsActive = !f.IsActive
	if err := r.db.WithContext(ctx).Model(&f).Update("is_active", f.IsActive).Error; err != nil {
		return false, false, err
	}
	return f.IsActive, true, nil
}

// Deactivate is the soft delete: the row stays retrievable by id and in
// admin listings, active-only queries skip it.
func (r *foreclosureRepository) Deactivate(ctx context.Context, id string) error {
	if r.health.DemoMode(ctx) {
		r.store.DeactivateForeclosure(id)
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.ForeclosureListing{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
