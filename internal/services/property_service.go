package services

import (
	"context"
	"strings"

	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type PropertyRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  string  `json:"description"`
	Address      string  `json:"address" validate:"required,max=200"`
	City         string  `json:"city" validate:"omitempty,max=100"`
	State        string  `json:"state" validate:"omitempty,max=50"`
	Zip          string  `json:"zip" validate:"omitempty,max=20"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Beds         int     `json:"beds" validate:"omitempty,gte=0"`
	Baths        float64 `json:"baths" validate:"omitempty,gte=0"`
	Sqft         int     `json:"sqft" validate:"omitempty,gte=0"`
	PropertyType string  `json:"property_type" validate:"omitempty,oneof=single_family multi_family condo townhouse land commercial"`
	ImageURL     string  `json:"image_url"`
	IsFeatured   bool    `json:"is_featured"`
}

type PropertyService interface {
	Create(ctx context.Context, req PropertyRequest) (*models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	// ListPublic hides soft-deleted rows; ListAdmin includes them.
	ListPublic(ctx context.Context, f repositories.PropertyFilter) ([]*models.Property, error)
	ListAdmin(ctx context.Context) ([]*models.Property, error)
	Update(ctx context.Context, id string, req PropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id string) error
}

type propertyService struct {
	properties repositories.PropertyRepository
}

func NewPropertyService(properties repositories.PropertyRepository) PropertyService {
	return &propertyService{properties: properties}
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func (s *propertyService) Create(ctx context.Context, req PropertyRequest) (*models.Property, error) {
	p := &models.Property{
		Title:        req.Title,
		Slug:         slugify(req.Title),
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Price:        req.Price,
		Beds:         req.Beds,
		Baths:        req.Baths,
		Sqft:         req.Sqft,
		PropertyType: req.PropertyType,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		IsFeatured:   req.IsFeatured,
	}
	created, err := s.properties.Create(ctx, p)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "properties", "failed to create property")
	}
	logger.CtxInfo(ctx, "property created", "property_id", created.ID)
	return created, nil
}

func (s *propertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "properties", "failed to load property")
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Property not found")
	}
	return p, nil
}

func (s *propertyService) ListPublic(ctx context.Context, f repositories.PropertyFilter) ([]*models.Property, error) {
	f.IncludeInactive = false
	out, err := s.properties.List(ctx, f)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "properties", "failed to list properties")
	}
	return out, nil
}

func (s *propertyService) ListAdmin(ctx context.Context) ([]*models.Property, error) {
	out, err := s.properties.List(ctx, repositories.PropertyFilter{IncludeInactive: true})
	if err != nil {
		return nil, apperrors.DatabaseError(err, "properties", "failed to list properties")
	}
	return out, nil
}

func (s *propertyService) Update(ctx context.Context, id string, req PropertyRequest) (*models.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Title = req.Title
	p.Slug = slugify(req.Title)
	p.Description = req.Description
	p.Address = req.Address
	p.City = req.City
	p.State = req.State
	p.Zip = req.Zip
	p.Price = req.Price
	p.Beds = req.Beds
	p.Baths = req.Baths
	p.Sqft = req.Sqft
	p.PropertyType = req.PropertyType
	p.ImageURL = req.ImageURL
	p.IsFeatured = req.IsFeatured
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, apperrors.DatabaseError(err, "properties", "failed to update property")
	}
	return p, nil
}

// Delete soft-deletes: the listing disappears from public queries but direct
// lookups by id keep working.
func (s *propertyService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.properties.Deactivate(ctx, id); err != nil {
		return apperrors.DatabaseError(err, "properties", "failed to delete property")
	}
	logger.CtxInfo(ctx, "property deactivated", "property_id", id)
	return nil
}
