package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

// PropertyFilter narrows public listing queries. Zero values match all.
type PropertyFilter struct {
	City         string
	State        string
	PropertyType string
	MinPrice     float64
	MaxPrice     float64
	FeaturedOnly bool
	// IncludeInactive is set only by admin views; public queries never see
	// soft-deleted rows.
	IncludeInactive bool
}

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) (*models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context, f PropertyFilter) ([]*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	// Deactivate is the soft delete: flips is_active, keeps the row.
	Deactivate(ctx context.Context, id string) error
}

type propertyRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewPropertyRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) PropertyRepository {
	return &propertyRepository{db: db, health: health, store: store}
}

func (r *propertyRepository) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	if r.health.DemoMode(ctx) {
		return r.store.CreateProperty(p), nil
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	if r.health.DemoMode(ctx) {
		return r.store.GetPropertyByID(id), nil
	}
	var p models.Property
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) List(ctx context.Context, f PropertyFilter) ([]*models.Property, error) {
	if r.health.DemoMode(ctx) {
		var all []*models.Property
		if f.IncludeInactive {
			all = r.store.ListAllProperties()
		} else {
			all = r.store.ListProperties()
		}
		out := all[:0]
		for _, p := range all {
			if matchProperty(p, f) {
				out = append(out, p)
			}
		}
		return out, nil
	}

	q := r.db.WithContext(ctx).Order("created_at desc")
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if f.City != "" {
		q = q.Where("lower(city) = lower(?)", f.City)
	}
	if f.State != "" {
		q = q.Where("lower(state) = lower(?)", f.State)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	var out []*models.Property
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func matchProperty(p *models.Property, f PropertyFilter) bool {
	if f.City != "" && !strings.EqualFold(p.City, f.City) {
		return false
	}
	if f.State != "" && !strings.EqualFold(p.State, f.State) {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.FeaturedOnly && !p.IsFeatured {
		return false
	}
	return true
}

func (r *propertyRepository) Update(ctx context.Context, p *models.Property) error {
	if r.health.DemoMode(ctx) {
		r.store.UpdateProperty(p)
		return nil
	}
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *propertyRepository) Deactivate(ctx context.Context, id string) error {
	if r.health.DemoMode(ctx) {
		r.store.DeactivateProperty(id)
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
