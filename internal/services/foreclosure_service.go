package services

import (
	"context"
	"time"

	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type ForeclosureRequest struct {
	Address        string     `json:"address" validate:"required,max=200"`
	City           string     `json:"city" validate:"omitempty,max=100"`
	State          string     `json:"state" validate:"omitempty,max=50"`
	Zip            string     `json:"zip" validate:"omitempty,max=20"`
	County         string     `json:"county" validate:"omitempty,max=100"`
	CaseNumber     string     `json:"case_number" validate:"omitempty,max=60"`
	AuctionDate    *time.Time `json:"auction_date"`
	OpeningBid     float64    `json:"opening_bid" validate:"omitempty,gte=0"`
	EstimatedValue float64    `json:"estimated_value" validate:"omitempty,gte=0"`
}

// ForeclosurePreview is the public teaser: enough to show the product
// exists, not enough to act on without a subscription.
type ForeclosurePreview struct {
	ID          string     `json:"id"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	County      string     `json:"county"`
	AuctionDate *time.Time `json:"auction_date,omitempty"`
}

type ForeclosureService interface {
	Create(ctx context.Context, req ForeclosureRequest) (*models.ForeclosureListing, error)
	Get(ctx context.Context, id string) (*models.ForeclosureListing, error)
	// ListForInvestor enforces the subscription gate.
	ListForInvestor(ctx context.Context, inv *models.CommonInvestor) ([]*models.ForeclosureListing, error)
	ListAdmin(ctx context.Context) ([]*models.ForeclosureListing, error)
	PublicPreview(ctx context.Context) ([]*ForeclosurePreview, error)
	Update(ctx context.Context, id string, req ForeclosureRequest) (*models.ForeclosureListing, error)
	Toggle(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type foreclosureService struct {
	foreclosures repositories.ForeclosureRepository
}

func NewForeclosureService(foreclosures repositories.ForeclosureRepository) ForeclosureService {
	return &foreclosureService{foreclosures: foreclosures}
}

func (s *foreclosureService) Create(ctx context.Context, req ForeclosureRequest) (*models.ForeclosureListing, error) {
	f := &models.ForeclosureListing{
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		County:         req.County,
		CaseNumber:     req.CaseNumber,
		AuctionDate:    req.AuctionDate,
		OpeningBid:     req.OpeningBid,
		EstimatedValue: req.EstimatedValue,
		IsActive:       true,
	}
	created, err := s.foreclosures.Create(ctx, f)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "foreclosures", "failed to create listing")
	}
	logger.CtxInfo(ctx, "foreclosure listing created", "foreclosure_id", created.ID)
	return created, nil
}

func (s *foreclosureService) Get(ctx context.Context, id string) (*models.ForeclosureListing, error) {
	f, err := s.foreclosures.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "foreclosures", "failed to load listing")
	}
	if f == nil {
		return nil, apperrors.NewNotFoundError("Foreclosure listing not found")
	}
	return f, nil
}

func subscriptionActive(inv *models.CommonInvestor) bool {
	if inv == nil || !inv.HasForeclosureSubscription {
		return false
	}
	if inv.ForeclosureSubscriptionExpiry == nil {
		return true
	}
	return inv.ForeclosureSubscriptionExpiry.After(time.Now())
}

func (s *foreclosureService) ListForInvestor(ctx context.Context, inv *models.CommonInvestor) ([]*models.ForeclosureListing, error) {
	if !subscriptionActive(inv) {
		return nil, apperrors.ErrSubscriptionRequired
	}
	out, err := s.foreclosures.List(ctx, true)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "foreclosures", "failed to list foreclosures")
	}
	return out, nil
}

func (s *foreclosureService) ListAdmin(ctx context.Context) ([]*models.ForeclosureListing, error) {
	out, err := s.foreclosures.List(ctx, false)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "foreclosures", "failed to list foreclosures")
	}
	return out, nil
}

func (s *foreclosureService) PublicPreview(ctx context.Context) ([]*ForeclosurePreview, error) {
	all, err := s.foreclosures.List(ctx, true)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "foreclosures", "failed to list foreclosures")
	}
	out := make([]*ForeclosurePreview, 0, len(all))
	for _, f := range all {
		out = append(out, &ForeclosurePreview{
			ID:          f.ID,
			City:        f.City,
			State:       f.State,
			County:      f.County,
			AuctionDate: f.AuctionDate,
		})
	}
	return out, nil
}

func (s *foreclosureService) Update(ctx context.Context, id string, req ForeclosureRequest) (*models.ForeclosureListing, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Address = req.Address
	f.City = req.City
	f.State = req.State
	f.Zip = req.Zip
	f.County = req.County
	f.CaseNumber = req.CaseNumber
	f.AuctionDate = req.AuctionDate
	f.OpeningBid = req.OpeningBid
	f.EstimatedValue = req.EstimatedValue
	if err := s.foreclosures.Update(ctx, f); err != nil {
		return nil, apperrors.DatabaseError(err, "foreclosures", "failed to update listing")
	}
	return f, nil
}

// Toggle flips visibility and returns the new state. Calling it twice
// returns to the starting state.
func (s *foreclosureService) Toggle(ctx context.Context, id string) (bool, error) {
	active, ok, err := s.foreclosures.Toggle(ctx, id)
	if err != nil {
		return false, apperrors.DatabaseError(err, "foreclosures", "failed to toggle listing")
	}
	if !ok {
		return false, apperrors.NewNotFoundError("Foreclosure listing not found")
	}
	logger.CtxInfo(ctx, "foreclosure listing toggled", "foreclosure_id", id, "active", active)
	return active, nil
}

// Delete soft-deletes like property deletion: the listing drops out of
// investor and preview queries but stays in admin views and id lookups.
func (s *foreclosureService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.foreclosures.Deactivate(ctx, id); err != nil {
		return apperrors.DatabaseError(err, "foreclosures", "failed to delete listing")
	}
	logger.CtxInfo(ctx, "foreclosure listing deactivated", "foreclosure_id", id)
	return nil
}
