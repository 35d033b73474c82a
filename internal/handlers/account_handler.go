package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/models"
	"homevest_backend/internal/services"
)

// AccountHandler is the admin surface for account management: listings,
// the two approval workflows, subscriptions, and admin users.
type AccountHandler struct {
	BaseHandler
	accounts services.AccountService
}

func NewAccountHandler(accounts services.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) ListInvestors(c *gin.Context) {
	out, err := h.accounts.ListInvestors(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *AccountHandler) GetInvestor(c *gin.Context) {
	inv, err := h.accounts.GetInvestor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, inv)
}

func (h *AccountHandler) GrantSubscription(c *gin.Context) {
	var req services.GrantSubscriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	inv, err := h.accounts.GrantForeclosureSubscription(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, inv)
}

func (h *AccountHandler) DeactivateInvestor(c *gin.Context) {
	if err := h.accounts.DeactivateInvestor(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AccountHandler) ListInstitutional(c *gin.Context) {
	status := models.ApprovalStatus(c.Query("status"))
	out, err := h.accounts.ListInstitutional(c.Request.Context(), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *AccountHandler) ApproveInstitutional(c *gin.Context) {
	var req services.ApproveInstitutionalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	ii, err := h.accounts.ApproveInstitutional(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, ii)
}

func (h *AccountHandler) RejectInstitutional(c *gin.Context) {
	ii, err := h.accounts.RejectInstitutional(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, ii)
}

func (h *AccountHandler) ListPartners(c *gin.Context) {
	status := models.ApprovalStatus(c.Query("status"))
	out, err := h.accounts.ListPartners(c.Request.Context(), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *AccountHandler) ApprovePartner(c *gin.Context) {
	p, err := h.accounts.ApprovePartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, p)
}

func (h *AccountHandler) RejectPartner(c *gin.Context) {
	p, err := h.accounts.RejectPartner(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, p)
}

func (h *AccountHandler) ListAdmins(c *gin.Context) {
	out, err := h.accounts.ListAdmins(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *AccountHandler) CreateAdmin(c *gin.Context) {
	var req services.CreateAdminRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	a, err := h.accounts.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, a)
}
