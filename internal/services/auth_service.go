package services

import (
	"context"
	"time"

	"homevest_backend/internal/auth"
	"homevest_backend/internal/config"
	"homevest_backend/internal/email"
	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

// LoginResult is the payload handed back on a successful login. TokenType
// tells the client how to present the token: "session" tokens are opaque
// and server-side, "jwt" tokens are self-contained.
type LoginResult struct {
	Token     string             `json:"token"`
	TokenType string             `json:"token_type"`
	Role      models.AccountRole `json:"role"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	Account   interface{}        `json:"account"`
}

type RegisterInvestorRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

type RegisterInstitutionalRequest struct {
	PersonName      string `json:"person_name" validate:"required,max=120"`
	InstitutionName string `json:"institution_name" validate:"required,max=160"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
}

type RegisterPartnerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=40"`
	Password    string `json:"password" validate:"required,min=8"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"company_name" validate:"omitempty,max=160"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AuthService owns login dispatch across the four account tables, the three
// registration flows, logout, and password reset.
type AuthService interface {
	Login(ctx context.Context, role models.AccountRole, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, role models.AccountRole, token string) error
	RegisterInvestor(ctx context.Context, req RegisterInvestorRequest) (*models.CommonInvestor, error)
	RegisterInstitutional(ctx context.Context, req RegisterInstitutionalRequest) (*models.InstitutionalInvestor, error)
	RegisterPartner(ctx context.Context, req RegisterPartnerRequest) (*models.Partner, error)
	RequestPasswordReset(ctx context.Context, role models.AccountRole, emailAddr string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	investors     repositories.InvestorRepository
	institutional repositories.InstitutionalRepository
	partners      repositories.PartnerRepository
	admins        repositories.AdminRepository
	sessions      repositories.SessionRepository
	resets        repositories.PasswordResetRepository
	hasher        auth.Hasher
	mailer        email.Sender
}

func NewAuthService(
	investors repositories.InvestorRepository,
	institutional repositories.InstitutionalRepository,
	partners repositories.PartnerRepository,
	admins repositories.AdminRepository,
	sessions repositories.SessionRepository,
	resets repositories.PasswordResetRepository,
	hasher auth.Hasher,
	mailer email.Sender,
) AuthService {
	return &authService{
		investors:     investors,
		institutional: institutional,
		partners:      partners,
		admins:        admins,
		sessions:      sessions,
		resets:        resets,
		hasher:        hasher,
		mailer:        mailer,
	}
}

func (s *authService) sessionTTL() time.Duration {
	return time.Duration(config.GetConfig().Auth.SessionTTLHours) * time.Hour
}

// Login verifies credentials against the table the role names and issues
// that role's token. Unknown username, wrong password, deactivated account
// and pending or rejected approval all produce the same error, so the
// endpoint can neither enumerate accounts nor confirm a credential pair for
// an account that is not allowed to log in. The real reason is logged.
func (s *authService) Login(ctx context.Context, role models.AccountRole, username, password string) (*LoginResult, error) {
	switch role {
	case models.RoleInvestor:
		return s.loginInvestor(ctx, username, password)
	case models.RoleInstitutional:
		return s.loginInstitutional(ctx, username, password)
	case models.RolePartner:
		return s.loginPartner(ctx, username, password)
	case models.RoleAdmin:
		return s.loginAdmin(ctx, username, password)
	default:
		return nil, apperrors.ErrInvalidAccountRole
	}
}

func (s *authService) loginInvestor(ctx context.Context, username, password string) (*LoginResult, error) {
	inv, err := s.investors.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to look up account")
	}
	if inv == nil || !s.hasher.Compare(inv.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !inv.IsActive {
		logger.CtxInfo(ctx, "login rejected, investor deactivated", "investor_id", inv.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	token := auth.NewSessionToken()
	expires := time.Now().Add(s.sessionTTL())
	if err := s.sessions.Create(ctx, models.RoleInvestor, inv.ID, token, expires); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to create session")
	}
	logger.CtxInfo(ctx, "investor logged in", "investor_id", inv.ID)
	return &LoginResult{Token: token, TokenType: "session", Role: models.RoleInvestor, ExpiresAt: &expires, Account: inv}, nil
}

func (s *authService) loginInstitutional(ctx context.Context, username, password string) (*LoginResult, error) {
	ii, err := s.institutional.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to look up account")
	}
	if ii == nil || !s.hasher.Compare(ii.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if ii.Status != models.ApprovalApproved || !ii.IsActive {
		logger.CtxInfo(ctx, "login rejected, institutional account not usable",
			"institutional_id", ii.ID, "status", string(ii.Status), "active", ii.IsActive)
		return nil, apperrors.ErrInvalidCredentials
	}

	token := auth.NewSessionToken()
	expires := time.Now().Add(s.sessionTTL())
	if err := s.sessions.Create(ctx, models.RoleInstitutional, ii.ID, token, expires); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to create session")
	}
	logger.CtxInfo(ctx, "institutional investor logged in", "institutional_id", ii.ID)
	return &LoginResult{Token: token, TokenType: "session", Role: models.RoleInstitutional, ExpiresAt: &expires, Account: ii}, nil
}

func (s *authService) loginPartner(ctx context.Context, username, password string) (*LoginResult, error) {
	p, err := s.partners.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to look up account")
	}
	if p == nil || !s.hasher.Compare(p.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if p.ApprovalStatus != models.ApprovalApproved || !p.IsActive {
		logger.CtxInfo(ctx, "login rejected, partner account not usable",
			"partner_id", p.ID, "status", string(p.ApprovalStatus), "active", p.IsActive)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(p)
	if err != nil {
		return nil, apperrors.SystemError(err, "auth", "failed to sign token")
	}
	logger.CtxInfo(ctx, "partner logged in", "partner_id", p.ID)
	return &LoginResult{Token: token, TokenType: "jwt", Role: models.RolePartner, Account: p}, nil
}

func (s *authService) loginAdmin(ctx context.Context, username, password string) (*LoginResult, error) {
	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to look up account")
	}
	if a == nil || !s.hasher.Compare(a.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !a.IsActive {
		logger.CtxInfo(ctx, "login rejected, admin deactivated", "admin_id", a.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	token := auth.NewSessionToken()
	expires := time.Now().Add(s.sessionTTL())
	if err := s.sessions.Create(ctx, models.RoleAdmin, a.ID, token, expires); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to create session")
	}
	logger.CtxInfo(ctx, "admin logged in", "admin_id", a.ID)
	return &LoginResult{Token: token, TokenType: "session", Role: models.RoleAdmin, ExpiresAt: &expires, Account: a}, nil
}

// Logout deletes the session for session-backed roles. Partner JWTs cannot
// be revoked server-side; logout is a client-side discard and a no-op here.
func (s *authService) Logout(ctx context.Context, role models.AccountRole, token string) error {
	if role == models.RolePartner {
		return nil
	}
	if err := s.sessions.Delete(ctx, role, token); err != nil {
		return apperrors.DatabaseError(err, "auth", "failed to delete session")
	}
	return nil
}

func (s *authService) RegisterInvestor(ctx context.Context, req RegisterInvestorRequest) (*models.CommonInvestor, error) {
	if existing, err := s.investors.GetByUsername(ctx, req.Username); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to check username")
	} else if existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if existing, err := s.investors.GetByEmail(ctx, req.Email); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to check email")
	} else if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.SystemError(err, "auth", "failed to hash password")
	}

	inv := &models.CommonInvestor{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Phone:        req.Phone,
		IsActive:     true,
	}
	created, err := s.investors.Create(ctx, inv)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.DatabaseError(err, "auth", "failed to create account")
	}
	logger.CtxInfo(ctx, "investor registered", "investor_id", created.ID)
	return created, nil
}

// RegisterInstitutional files an application. No credentials are collected;
// approval assigns them later.
func (s *authService) RegisterInstitutional(ctx context.Context, req RegisterInstitutionalRequest) (*models.InstitutionalInvestor, error) {
	if existing, err := s.institutional.GetByEmail(ctx, req.Email); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to check email")
	} else if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	ii := &models.InstitutionalInvestor{
		PersonName:      req.PersonName,
		InstitutionName: req.InstitutionName,
		Email:           req.Email,
		Phone:           req.Phone,
		Status:          models.ApprovalPending,
		IsActive:        false,
	}
	created, err := s.institutional.Create(ctx, ii)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err, "auth", "failed to create application")
	}
	logger.CtxInfo(ctx, "institutional application filed", "institutional_id", created.ID)
	return created, nil
}

func (s *authService) RegisterPartner(ctx context.Context, req RegisterPartnerRequest) (*models.Partner, error) {
	if existing, err := s.partners.GetByUsername(ctx, req.Username); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to check username")
	} else if existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if existing, err := s.partners.GetByEmail(ctx, req.Email); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "failed to check email")
	} else if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.SystemError(err, "auth", "failed to hash password")
	}

	p := &models.Partner{
		Username:       req.Username,
		PasswordHash:   hash,
		Email:          req.Email,
		CompanyName:    req.CompanyName,
		Phone:          req.Phone,
		ApprovalStatus: models.ApprovalPending,
		IsActive:       false,
	}
	created, err := s.partners.Create(ctx, p)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.DatabaseError(err, "auth", "failed to create account")
	}
	logger.CtxInfo(ctx, "partner registered, pending approval", "partner_id", created.ID)
	return created, nil
}

// RequestPasswordReset always reports success so the endpoint leaks nothing
// about which emails exist. A token is only minted when the account is real.
func (s *authService) RequestPasswordReset(ctx context.Context, role models.AccountRole, emailAddr string) error {
	var userID string
	switch role {
	case models.RoleInvestor:
		inv, err := s.investors.GetByEmail(ctx, emailAddr)
		if err != nil {
			return apperrors.DatabaseError(err, "auth", "failed to look up account")
		}
		if inv != nil {
			userID = inv.ID
		}
	case models.RoleInstitutional:
		ii, err := s.institutional.GetByEmail(ctx, emailAddr)
		if err != nil {
			return apperrors.DatabaseError(err, "auth", "failed to look up account")
		}
		if ii != nil {
			userID = ii.ID
		}
	case models.RolePartner:
		p, err := s.partners.GetByEmail(ctx, emailAddr)
		if err != nil {
			return apperrors.DatabaseError(err, "auth", "failed to look up account")
		}
		if p != nil {
			userID = p.ID
		}
	default:
		return apperrors.ErrInvalidAccountRole
	}

	if userID == "" {
		logger.CtxInfo(ctx, "password reset requested for unknown email")
		return nil
	}

	ttl := time.Duration(config.GetConfig().Auth.ResetTTLMinutes) * time.Minute
	token := auth.NewResetToken()
	_, err := s.resets.Create(ctx, &models.PasswordResetToken{
		UserID:    userID,
		UserType:  role,
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return apperrors.DatabaseError(err, "auth", "failed to create reset token")
	}

	if err := s.mailer.Send(email.PasswordResetMessage(emailAddr, token)); err != nil {
		// The token is already stored; a mail hiccup should not 500 the
		// request or reveal anything to the caller.
		logger.CtxWarn(ctx, "failed to send password reset email", "error", err.Error())
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	t, err := s.resets.GetByToken(ctx, req.Token)
	if err != nil {
		return apperrors.DatabaseError(err, "auth", "failed to look up token")
	}
	if t == nil || t.Used {
		return apperrors.ErrInvalidToken
	}
	if time.Now().After(t.ExpiresAt) {
		return apperrors.ErrTokenExpired
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return apperrors.SystemError(err, "auth", "failed to hash password")
	}

	switch t.UserType {
	case models.RoleInvestor:
		inv, err := s.investors.GetByID(ctx, t.UserID)
		if err != nil || inv == nil {
			return apperrors.ErrInvalidToken
		}
		inv.PasswordHash = hash
		if err := s.investors.Update(ctx, inv); err != nil {
			return apperrors.DatabaseError(err, "auth", "failed to update password")
		}
	case models.RoleInstitutional:
		ii, err := s.institutional.GetByID(ctx, t.UserID)
		if err != nil || ii == nil {
			return apperrors.ErrInvalidToken
		}
		ii.PasswordHash = hash
		if err := s.institutional.Update(ctx, ii); err != nil {
			return apperrors.DatabaseError(err, "auth", "failed to update password")
		}
	case models.RolePartner:
		p, err := s.partners.GetByID(ctx, t.UserID)
		if err != nil || p == nil {
			return apperrors.ErrInvalidToken
		}
		p.PasswordHash = hash
		if err := s.partners.Update(ctx, p); err != nil {
			return apperrors.DatabaseError(err, "auth", "failed to update password")
		}
	default:
		return apperrors.ErrInvalidToken
	}

	if err := s.resets.MarkUsed(ctx, req.Token); err != nil {
		return apperrors.DatabaseError(err, "auth", "failed to consume token")
	}
	logger.CtxInfo(ctx, "password reset completed", "user_id", t.UserID, "user_type", string(t.UserType))
	return nil
}

// CleanupExpiredSessions is called periodically from the app loop. Only
// sessions past their expiry are removed.
func (s *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, apperrors.DatabaseError(err, "auth", "failed to clean up sessions")
	}
	if n > 0 {
		logger.CtxInfo(ctx, "expired sessions removed", "count", n)
	}
	return n, nil
}
