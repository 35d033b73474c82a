package services

import (
	"context"
	"time"

	"homevest_backend/internal/auth"
	"homevest_backend/internal/email"
	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type ApproveInstitutionalRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
}

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Password string `json:"password" validate:"required,min=8"`
}

type GrantSubscriptionRequest struct {
	Plan   string `json:"plan" validate:"required,oneof=monthly quarterly annual"`
	Months int    `json:"months" validate:"required,gt=0"`
}

// AccountService is the back-office side of account management: listings,
// the approval workflows, and admin user provisioning.
type AccountService interface {
	ListInvestors(ctx context.Context) ([]*models.CommonInvestor, error)
	GetInvestor(ctx context.Context, id string) (*models.CommonInvestor, error)
	GrantForeclosureSubscription(ctx context.Context, id string, req GrantSubscriptionRequest) (*models.CommonInvestor, error)
	DeactivateInvestor(ctx context.Context, id string) error

	ListInstitutional(ctx context.Context, status models.ApprovalStatus) ([]*models.InstitutionalInvestor, error)
	// ApproveInstitutional assigns credentials, activates the account, and
	// emails the applicant a temporary password.
	ApproveInstitutional(ctx context.Context, id string, req ApproveInstitutionalRequest) (*models.InstitutionalInvestor, error)
	RejectInstitutional(ctx context.Context, id string) (*models.InstitutionalInvestor, error)

	ListPartners(ctx context.Context, status models.ApprovalStatus) ([]*models.Partner, error)
	ApprovePartner(ctx context.Context, id string) (*models.Partner, error)
	RejectPartner(ctx context.Context, id string) (*models.Partner, error)

	ListAdmins(ctx context.Context) ([]*models.AdminUser, error)
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (*models.AdminUser, error)
}

type accountService struct {
	investors     repositories.InvestorRepository
	institutional repositories.InstitutionalRepository
	partners      repositories.PartnerRepository
	admins        repositories.AdminRepository
	hasher        auth.Hasher
	mailer        email.Sender
}

func NewAccountService(
	investors repositories.InvestorRepository,
	institutional repositories.InstitutionalRepository,
	partners repositories.PartnerRepository,
	admins repositories.AdminRepository,
	hasher auth.Hasher,
	mailer email.Sender,
) AccountService {
	return &accountService{
		investors:     investors,
		institutional: institutional,
		partners:      partners,
		admins:        admins,
		hasher:        hasher,
		mailer:        mailer,
	}
}

func (s *accountService) ListInvestors(ctx context.Context) ([]*models.CommonInvestor, error) {
	out, err := s.investors.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to list investors")
	}
	return out, nil
}

func (s *accountService) GetInvestor(ctx context.Context, id string) (*models.CommonInvestor, error) {
	inv, err := s.investors.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to load investor")
	}
	if inv == nil {
		return nil, apperrors.NewNotFoundError("Investor not found")
	}
	return inv, nil
}

func (s *accountService) GrantForeclosureSubscription(ctx context.Context, id string, req GrantSubscriptionRequest) (*models.CommonInvestor, error) {
	inv, err := s.GetInvestor(ctx, id)
	if err != nil {
		return nil, err
	}

	// Extending an unexpired subscription stacks on top of the remaining time.
	base := time.Now()
	if inv.ForeclosureSubscriptionExpiry != nil && inv.ForeclosureSubscriptionExpiry.After(base) {
		base = *inv.ForeclosureSubscriptionExpiry
	}
	expiry := base.AddDate(0, req.Months, 0)

	inv.HasForeclosureSubscription = true
	inv.ForeclosureSubscriptionExpiry = &expiry
	inv.SubscriptionPlan = req.Plan
	if err := s.investors.Update(ctx, inv); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to update subscription")
	}
	logger.CtxInfo(ctx, "foreclosure subscription granted", "investor_id", inv.ID, "plan", req.Plan, "months", req.Months)
	return inv, nil
}

func (s *accountService) DeactivateInvestor(ctx context.Context, id string) error {
	inv, err := s.GetInvestor(ctx, id)
	if err != nil {
		return err
	}
	inv.IsActive = false
	if err := s.investors.Update(ctx, inv); err != nil {
		return apperrors.DatabaseError(err, "accounts", "failed to deactivate investor")
	}
	logger.CtxInfo(ctx, "investor deactivated", "investor_id", id)
	return nil
}

func (s *accountService) ListInstitutional(ctx context.Context, status models.ApprovalStatus) ([]*models.InstitutionalInvestor, error) {
	out, err := s.institutional.List(ctx, status)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to list institutional investors")
	}
	return out, nil
}

func (s *accountService) ApproveInstitutional(ctx context.Context, id string, req ApproveInstitutionalRequest) (*models.InstitutionalInvestor, error) {
	ii, err := s.institutional.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to load application")
	}
	if ii == nil {
		return nil, apperrors.NewNotFoundError("Application not found")
	}
	if ii.Status != models.ApprovalPending {
		return nil, apperrors.ErrInvalidOperation("accounts", "Application has already been decided")
	}
	if taken, err := s.institutional.GetByUsername(ctx, req.Username); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to check username")
	} else if taken != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	tempPassword := auth.NewResetToken()[:12]
	hash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		return nil, apperrors.SystemError(err, "accounts", "failed to hash password")
	}

	username := req.Username
	ii.Username = &username
	ii.PasswordHash = hash
	ii.Status = models.ApprovalApproved
	ii.IsActive = true
	if err := s.institutional.Update(ctx, ii); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to approve application")
	}

	if err := s.mailer.Send(email.InstitutionalApprovedMessage(ii.Email, username, tempPassword)); err != nil {
		logger.CtxWarn(ctx, "failed to send approval email", "error", err.Error(), "institutional_id", ii.ID)
	}
	logger.CtxInfo(ctx, "institutional application approved", "institutional_id", ii.ID)
	return ii, nil
}

func (s *accountService) RejectInstitutional(ctx context.Context, id string) (*models.InstitutionalInvestor, error) {
	ii, err := s.institutional.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to load application")
	}
	if ii == nil {
		return nil, apperrors.NewNotFoundError("Application not found")
	}
	if ii.Status != models.ApprovalPending {
		return nil, apperrors.ErrInvalidOperation("accounts", "Application has already been decided")
	}
	ii.Status = models.ApprovalRejected
	ii.IsActive = false
	if err := s.institutional.Update(ctx, ii); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to reject application")
	}
	logger.CtxInfo(ctx, "institutional application rejected", "institutional_id", ii.ID)
	return ii, nil
}

func (s *accountService) ListPartners(ctx context.Context, status models.ApprovalStatus) ([]*models.Partner, error) {
	out, err := s.partners.List(ctx, status)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to list partners")
	}
	return out, nil
}

func (s *accountService) ApprovePartner(ctx context.Context, id string) (*models.Partner, error) {
	p, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to load partner")
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Partner not found")
	}
	if p.ApprovalStatus != models.ApprovalPending {
		return nil, apperrors.ErrInvalidOperation("accounts", "Partner has already been decided")
	}
	p.ApprovalStatus = models.ApprovalApproved
	p.IsActive = true
	if err := s.partners.Update(ctx, p); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to approve partner")
	}
	if err := s.mailer.Send(email.PartnerApprovedMessage(p.Email, p.Username)); err != nil {
		logger.CtxWarn(ctx, "failed to send approval email", "error", err.Error(), "partner_id", p.ID)
	}
	logger.CtxInfo(ctx, "partner approved", "partner_id", p.ID)
	return p, nil
}

func (s *accountService) RejectPartner(ctx context.Context, id string) (*models.Partner, error) {
	p, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to load partner")
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Partner not found")
	}
	if p.ApprovalStatus != models.ApprovalPending {
		return nil, apperrors.ErrInvalidOperation("accounts", "Partner has already been decided")
	}
	p.ApprovalStatus = models.ApprovalRejected
	p.IsActive = false
	if err := s.partners.Update(ctx, p); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to reject partner")
	}
	logger.CtxInfo(ctx, "partner rejected", "partner_id", p.ID)
	return p, nil
}

func (s *accountService) ListAdmins(ctx context.Context) ([]*models.AdminUser, error) {
	out, err := s.admins.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to list admins")
	}
	return out, nil
}

func (s *accountService) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*models.AdminUser, error) {
	if existing, err := s.admins.GetByUsername(ctx, req.Username); err != nil {
		return nil, apperrors.DatabaseError(err, "accounts", "failed to check username")
	} else if existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.SystemError(err, "accounts", "failed to hash password")
	}
	a, err := s.admins.Create(ctx, &models.AdminUser{
		Username:     req.Username,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.DatabaseError(err, "accounts", "failed to create admin")
	}
	logger.CtxInfo(ctx, "admin user created", "admin_id", a.ID)
	return a, nil
}
