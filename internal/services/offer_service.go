package services

import (
	"context"

	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type OfferRequest struct {
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Message string  `json:"message" validate:"omitempty,max=2000"`
}

type OfferDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

type OfferService interface {
	// Submit files an offer on an active property for the authenticated
	// investor.
	Submit(ctx context.Context, propertyID, investorID string, investorType models.AccountRole, req OfferRequest) (*models.Offer, error)
	ListForProperty(ctx context.Context, propertyID string) ([]*models.Offer, error)
	ListForInvestor(ctx context.Context, investorID string) ([]*models.Offer, error)
	ListAll(ctx context.Context) ([]*models.Offer, error)
	Decide(ctx context.Context, offerID string, req OfferDecisionRequest) (*models.Offer, error)
	Withdraw(ctx context.Context, offerID, investorID string) (*models.Offer, error)
}

type offerService struct {
	offers     repositories.OfferRepository
	properties repositories.PropertyRepository
}

func NewOfferService(offers repositories.OfferRepository, properties repositories.PropertyRepository) OfferService {
	return &offerService{offers: offers, properties: properties}
}

func (s *offerService) Submit(ctx context.Context, propertyID, investorID string, investorType models.AccountRole, req OfferRequest) (*models.Offer, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to load property")
	}
	if p == nil || !p.IsActive {
		return nil, apperrors.NewNotFoundError("Property not found")
	}

	o := &models.Offer{
		PropertyID:   propertyID,
		InvestorID:   investorID,
		InvestorType: investorType,
		Amount:       req.Amount,
		Message:      req.Message,
		Status:       models.OfferPending,
	}
	created, err := s.offers.Create(ctx, o)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to submit offer")
	}
	logger.CtxInfo(ctx, "offer submitted", "offer_id", created.ID, "property_id", propertyID, "amount", req.Amount)
	return created, nil
}

func (s *offerService) ListForProperty(ctx context.Context, propertyID string) ([]*models.Offer, error) {
	out, err := s.offers.List(ctx, propertyID, "")
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to list offers")
	}
	return out, nil
}

func (s *offerService) ListForInvestor(ctx context.Context, investorID string) ([]*models.Offer, error) {
	out, err := s.offers.List(ctx, "", investorID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to list offers")
	}
	return out, nil
}

func (s *offerService) ListAll(ctx context.Context) ([]*models.Offer, error) {
	out, err := s.offers.List(ctx, "", "")
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to list offers")
	}
	return out, nil
}

func (s *offerService) Decide(ctx context.Context, offerID string, req OfferDecisionRequest) (*models.Offer, error) {
	o, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to load offer")
	}
	if o == nil {
		return nil, apperrors.NewNotFoundError("Offer not found")
	}
	if o.Status != models.OfferPending {
		return nil, apperrors.ErrInvalidOperation("offers", "Offer has already been decided")
	}
	o.Status = models.OfferStatus(req.Status)
	if err := s.offers.Update(ctx, o); err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to update offer")
	}
	logger.CtxInfo(ctx, "offer decided", "offer_id", o.ID, "status", string(o.Status))
	return o, nil
}

// Withdraw lets an investor pull their own pending offer.
func (s *offerService) Withdraw(ctx context.Context, offerID, investorID string) (*models.Offer, error) {
	o, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to load offer")
	}
	if o == nil || o.InvestorID != investorID {
		return nil, apperrors.NewNotFoundError("Offer not found")
	}
	if o.Status != models.OfferPending {
		return nil, apperrors.ErrInvalidOperation("offers", "Only pending offers can be withdrawn")
	}
	o.Status = models.OfferWithdrawn
	if err := s.offers.Update(ctx, o); err != nil {
		return nil, apperrors.DatabaseError(err, "offers", "failed to withdraw offer")
	}
	return o, nil
}
