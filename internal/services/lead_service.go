package services

import (
	"context"

	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type LeadRequest struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"omitempty,max=30"`
	Message    string  `json:"message" validate:"omitempty,max=4000"`
	Source     string  `json:"source" validate:"omitempty,max=60"`
	PropertyID *string `json:"property_id"`
}

type LeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

type LeadService interface {
	// Submit is the public contact-form entry point.
	Submit(ctx context.Context, req LeadRequest) (*models.Lead, error)
	List(ctx context.Context) ([]*models.Lead, error)
	UpdateStatus(ctx context.Context, id string, req LeadStatusRequest) (*models.Lead, error)
}

type leadService struct {
	leads      repositories.LeadRepository
	properties repositories.PropertyRepository
}

func NewLeadService(leads repositories.LeadRepository, properties repositories.PropertyRepository) LeadService {
	return &leadService{leads: leads, properties: properties}
}

func (s *leadService) Submit(ctx context.Context, req LeadRequest) (*models.Lead, error) {
	// A dangling property reference downgrades to a general inquiry rather
	// than rejecting the lead.
	propertyID := req.PropertyID
	if propertyID != nil {
		p, err := s.properties.GetByID(ctx, *propertyID)
		if err != nil {
			return nil, apperrors.DatabaseError(err, "leads", "failed to check property")
		}
		if p == nil {
			propertyID = nil
		}
	}

	l := &models.Lead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Source:     req.Source,
		PropertyID: propertyID,
		Status:     models.LeadNew,
	}
	created, err := s.leads.Create(ctx, l)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "leads", "failed to submit lead")
	}
	logger.CtxInfo(ctx, "lead submitted", "lead_id", created.ID, "source", created.Source)
	return created, nil
}

func (s *leadService) List(ctx context.Context) ([]*models.Lead, error) {
	out, err := s.leads.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "leads", "failed to list leads")
	}
	return out, nil
}

func (s *leadService) UpdateStatus(ctx context.Context, id string, req LeadStatusRequest) (*models.Lead, error) {
	l, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "leads", "failed to load lead")
	}
	if l == nil {
		return nil, apperrors.NewNotFoundError("Lead not found")
	}
	l.Status = models.LeadStatus(req.Status)
	if err := s.leads.Update(ctx, l); err != nil {
		return nil, apperrors.DatabaseError(err, "leads", "failed to update lead")
	}
	return l, nil
}
