package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"homevest_backend/internal/auth"
	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

// Gin context keys set by the guards below.
const (
	CtxAdminKey        = "admin_user"
	CtxInvestorKey     = "investor"
	CtxInvestorTypeKey = "investor_type"
	CtxPartnerKey      = "partner_claims"
	CtxTokenKey        = "auth_token"
	CtxRoleKey         = "auth_role"
)

// AuthMiddleware resolves tokens to principals. Each role has its own guard
// so a token for one role can never open another role's surface.
type AuthMiddleware struct {
	sessions      repositories.SessionRepository
	investors     repositories.InvestorRepository
	institutional repositories.InstitutionalRepository
	admins        repositories.AdminRepository
}

func NewAuthMiddleware(
	sessions repositories.SessionRepository,
	investors repositories.InvestorRepository,
	institutional repositories.InstitutionalRepository,
	admins repositories.AdminRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:      sessions,
		investors:     investors,
		institutional: institutional,
		admins:        admins,
	}
}

// extractToken pulls the credential from the Authorization header or the
// session cookie, in that order.
func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimPrefix(h, "Bearer ")
		}
		return h
	}
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
	c.Abort()
}

// AdminAuth admits only live admin sessions whose owner still exists in
// admin_users and is active.
func (m *AuthMiddleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}
		ctx := c.Request.Context()

		ownerID, err := m.sessions.Resolve(ctx, models.RoleAdmin, token)
		if err != nil || ownerID == "" {
			abortUnauthorized(c)
			return
		}
		admin, err := m.admins.GetByID(ctx, ownerID)
		if err != nil || admin == nil || !admin.IsActive {
			abortUnauthorized(c)
			return
		}

		c.Set(CtxAdminKey, admin)
		c.Set(CtxTokenKey, token)
		c.Set(CtxRoleKey, models.RoleAdmin)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, admin.ID))
		c.Next()
	}
}

// InvestorAuth admits common investor sessions first, then institutional
// ones, so both investor kinds share the same protected surface.
func (m *AuthMiddleware) InvestorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}
		ctx := c.Request.Context()

		if ownerID, err := m.sessions.Resolve(ctx, models.RoleInvestor, token); err == nil && ownerID != "" {
			inv, err := m.investors.GetByID(ctx, ownerID)
			if err == nil && inv != nil && inv.IsActive {
				c.Set(CtxInvestorKey, inv)
				c.Set(CtxInvestorTypeKey, models.RoleInvestor)
				c.Set(CtxTokenKey, token)
				c.Set(CtxRoleKey, models.RoleInvestor)
				c.Request = c.Request.WithContext(logger.WithUserID(ctx, inv.ID))
				c.Next()
				return
			}
		}

		if ownerID, err := m.sessions.Resolve(ctx, models.RoleInstitutional, token); err == nil && ownerID != "" {
			ii, err := m.institutional.GetByID(ctx, ownerID)
			if err == nil && ii != nil && ii.IsActive {
				c.Set(CtxInvestorKey, ii)
				c.Set(CtxInvestorTypeKey, models.RoleInstitutional)
				c.Set(CtxTokenKey, token)
				c.Set(CtxRoleKey, models.RoleInstitutional)
				c.Request = c.Request.WithContext(logger.WithUserID(ctx, ii.ID))
				c.Next()
				return
			}
		}

		abortUnauthorized(c)
	}
}

// PartnerAuth validates the stateless partner JWT.
func (m *AuthMiddleware) PartnerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil || claims.Role != models.RolePartner {
			abortUnauthorized(c)
			return
		}

		c.Set(CtxPartnerKey, claims)
		c.Set(CtxTokenKey, token)
		c.Set(CtxRoleKey, models.RolePartner)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// CommonInvestorFromContext returns the authenticated common investor, or
// nil when the session belongs to an institutional investor.
func CommonInvestorFromContext(c *gin.Context) *models.CommonInvestor {
	v, ok := c.Get(CtxInvestorKey)
	if !ok {
		return nil
	}
	inv, _ := v.(*models.CommonInvestor)
	return inv
}

// InvestorIdentityFromContext returns the id and role of whichever investor
// kind is authenticated.
func InvestorIdentityFromContext(c *gin.Context) (string, models.AccountRole) {
	role, _ := c.Get(CtxInvestorTypeKey)
	r, _ := role.(models.AccountRole)
	if inv := CommonInvestorFromContext(c); inv != nil {
		return inv.ID, r
	}
	if v, ok := c.Get(CtxInvestorKey); ok {
		if ii, ok := v.(*models.InstitutionalInvestor); ok {
			return ii.ID, r
		}
	}
	return "", r
}

// AdminFromContext returns the authenticated admin.
func AdminFromContext(c *gin.Context) *models.AdminUser {
	v, ok := c.Get(CtxAdminKey)
	if !ok {
		return nil
	}
	a, _ := v.(*models.AdminUser)
	return a
}
