package services

import (
	"context"
	"time"

	"homevest_backend/internal/email"
	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type CampaignRequest struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	Body     string `json:"body" validate:"required"`
	Audience string `json:"audience" validate:"required,campaign_audience"`
}

type CampaignService interface {
	Create(ctx context.Context, req CampaignRequest) (*models.EmailCampaign, error)
	Get(ctx context.Context, id string) (*models.EmailCampaign, error)
	List(ctx context.Context) ([]*models.EmailCampaign, error)
	Update(ctx context.Context, id string, req CampaignRequest) (*models.EmailCampaign, error)
	Delete(ctx context.Context, id string) error
	// Send delivers the campaign to its audience. A campaign sends once;
	// repeat calls are rejected.
	Send(ctx context.Context, id string) (*models.EmailCampaign, error)
}

type campaignService struct {
	campaigns     repositories.CampaignRepository
	investors     repositories.InvestorRepository
	institutional repositories.InstitutionalRepository
	partners      repositories.PartnerRepository
	mailer        email.Sender
}

func NewCampaignService(
	campaigns repositories.CampaignRepository,
	investors repositories.InvestorRepository,
	institutional repositories.InstitutionalRepository,
	partners repositories.PartnerRepository,
	mailer email.Sender,
) CampaignService {
	return &campaignService{
		campaigns:     campaigns,
		investors:     investors,
		institutional: institutional,
		partners:      partners,
		mailer:        mailer,
	}
}

func (s *campaignService) Create(ctx context.Context, req CampaignRequest) (*models.EmailCampaign, error) {
	c := &models.EmailCampaign{
		Subject:  req.Subject,
		Body:     req.Body,
		Audience: models.CampaignAudience(req.Audience),
		Status:   models.CampaignDraft,
	}
	created, err := s.campaigns.Create(ctx, c)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to create campaign")
	}
	logger.CtxInfo(ctx, "campaign created", "campaign_id", created.ID)
	return created, nil
}

func (s *campaignService) Get(ctx context.Context, id string) (*models.EmailCampaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to load campaign")
	}
	if c == nil {
		return nil, apperrors.NewNotFoundError("Campaign not found")
	}
	return c, nil
}

func (s *campaignService) List(ctx context.Context) ([]*models.EmailCampaign, error) {
	out, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to list campaigns")
	}
	return out, nil
}

func (s *campaignService) Update(ctx context.Context, id string, req CampaignRequest) (*models.EmailCampaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == models.CampaignSent || c.Status == models.CampaignSending {
		return nil, apperrors.ErrCampaignAlreadySent
	}
	c.Subject = req.Subject
	c.Body = req.Body
	c.Audience = models.CampaignAudience(req.Audience)
	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to update campaign")
	}
	return c, nil
}

func (s *campaignService) Delete(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == models.CampaignSending {
		return apperrors.ErrInvalidOperation("campaigns", "Campaign is currently sending")
	}
	if err := s.campaigns.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError(err, "campaigns", "failed to delete campaign")
	}
	return nil
}

func (s *campaignService) recipients(ctx context.Context, audience models.CampaignAudience) ([]string, error) {
	var out []string

	if audience == models.AudienceAll || audience == models.AudienceInvestors {
		invs, err := s.investors.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, inv := range invs {
			if inv.IsActive {
				out = append(out, inv.Email)
			}
		}
		iis, err := s.institutional.List(ctx, models.ApprovalApproved)
		if err != nil {
			return nil, err
		}
		for _, ii := range iis {
			if ii.IsActive {
				out = append(out, ii.Email)
			}
		}
	}

	if audience == models.AudienceAll || audience == models.AudiencePartners {
		ps, err := s.partners.List(ctx, models.ApprovalApproved)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			if p.IsActive {
				out = append(out, p.Email)
			}
		}
	}
	return out, nil
}

func (s *campaignService) Send(ctx context.Context, id string) (*models.EmailCampaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == models.CampaignSent || c.Status == models.CampaignSending {
		return nil, apperrors.ErrCampaignAlreadySent
	}

	addrs, err := s.recipients(ctx, c.Audience)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to resolve recipients")
	}

	c.Status = models.CampaignSending
	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to update campaign")
	}

	sent := 0
	for _, to := range addrs {
		if err := s.mailer.Send(email.CampaignMessage(to, c.Subject, c.Body)); err != nil {
			logger.CtxWarn(ctx, "campaign delivery failed", "error", err.Error(), "to", to, "campaign_id", c.ID)
			continue
		}
		sent++
	}

	now := time.Now()
	c.Status = models.CampaignSent
	c.SentAt = &now
	c.RecipientCount = sent
	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, apperrors.DatabaseError(err, "campaigns", "failed to finalize campaign")
	}
	logger.CtxInfo(ctx, "campaign sent", "campaign_id", c.ID, "recipients", sent)
	return c, nil
}
