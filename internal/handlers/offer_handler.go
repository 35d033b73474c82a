package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/middleware"
	"homevest_backend/internal/services"
	"homevest_backend/pkg/apperrors"
)

type OfferHandler struct {
	BaseHandler
	offers services.OfferService
}

func NewOfferHandler(offers services.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// Submit handles POST /properties/:id/offers for authenticated investors.
func (h *OfferHandler) Submit(c *gin.Context) {
	investorID, role := middleware.InvestorIdentityFromContext(c)
	if investorID == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	var req services.OfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	o, err := h.offers.Submit(c.Request.Context(), c.Param("id"), investorID, role, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, o)
}

// ListMine handles GET /investor/offers.
func (h *OfferHandler) ListMine(c *gin.Context) {
	investorID, _ := middleware.InvestorIdentityFromContext(c)
	if investorID == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	out, err := h.offers.ListForInvestor(c.Request.Context(), investorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

// Withdraw handles POST /investor/offers/:id/withdraw.
func (h *OfferHandler) Withdraw(c *gin.Context) {
	investorID, _ := middleware.InvestorIdentityFromContext(c)
	if investorID == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	o, err := h.offers.Withdraw(c.Request.Context(), c.Param("id"), investorID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, o)
}

func (h *OfferHandler) ListAdmin(c *gin.Context) {
	propertyID := c.Query("property_id")
	var (
		out interface{}
		err error
	)
	if propertyID != "" {
		out, err = h.offers.ListForProperty(c.Request.Context(), propertyID)
	} else {
		out, err = h.offers.ListAll(c.Request.Context())
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

// Decide handles POST /admin/offers/:id/decide.
func (h *OfferHandler) Decide(c *gin.Context) {
	var req services.OfferDecisionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	o, err := h.offers.Decide(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, o)
}
