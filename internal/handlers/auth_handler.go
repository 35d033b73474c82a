package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/middleware"
	"homevest_backend/internal/models"
	"homevest_backend/internal/services"
	"homevest_backend/pkg/apperrors"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Role  string `json:"role" validate:"required,account_role"`
	Email string `json:"email" validate:"required,email"`
}

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/:role/register. Admin accounts are only
// provisioned through the back office, never here.
func (h *AuthHandler) Register(c *gin.Context) {
	switch models.AccountRole(c.Param("role")) {
	case models.RoleInvestor:
		h.RegisterInvestor(c)
	case models.RoleInstitutional:
		h.RegisterInstitutional(c)
	case models.RolePartner:
		h.RegisterPartner(c)
	default:
		h.HandleServiceError(c, apperrors.ErrInvalidAccountRole)
	}
}

// Login handles POST /auth/:role/login. The role path segment picks the
// account table; there is no shared username namespace across roles.
func (h *AuthHandler) Login(c *gin.Context) {
	role := models.AccountRole(c.Param("role"))

	var req loginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), role, req.Username, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}

// Logout handles POST /auth/logout. The role guard that admitted the
// request put the role and token into the gin context.
func (h *AuthHandler) Logout(c *gin.Context) {
	roleVal, _ := c.Get(middleware.CtxRoleKey)
	role, _ := roleVal.(models.AccountRole)
	token := c.GetString(middleware.CtxTokenKey)

	if err := h.authService.Logout(c.Request.Context(), role, token); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) RegisterInvestor(c *gin.Context) {
	var req services.RegisterInvestorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	inv, err := h.authService.RegisterInvestor(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, inv)
}

func (h *AuthHandler) RegisterInstitutional(c *gin.Context) {
	var req services.RegisterInstitutionalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	ii, err := h.authService.RegisterInstitutional(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{
		"id":      ii.ID,
		"status":  ii.Status,
		"message": "Application received. You will be contacted after review.",
	})
}

func (h *AuthHandler) RegisterPartner(c *gin.Context) {
	var req services.RegisterPartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	p, err := h.authService.RegisterPartner(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, p)
}

// ForgotPassword always answers 200 with the same body; the response never
// reveals whether the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.RequestPasswordReset(c.Request.Context(), models.AccountRole(req.Role), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "If the email exists, a reset code has been sent."})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req services.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Password updated"})
}

// Me handles GET /investor/me for both investor kinds.
func (h *AuthHandler) Me(c *gin.Context) {
	v, ok := c.Get(middleware.CtxInvestorKey)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	h.OK(c, v)
}

// MePartner handles GET /partner/me from the JWT claims.
func (h *AuthHandler) MePartner(c *gin.Context) {
	v, ok := c.Get(middleware.CtxPartnerKey)
	if !ok {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	h.OK(c, v)
}
