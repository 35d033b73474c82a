package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/middleware"
	"homevest_backend/internal/services"
	"homevest_backend/pkg/apperrors"
)

type ForeclosureHandler struct {
	BaseHandler
	foreclosures services.ForeclosureService
}

func NewForeclosureHandler(foreclosures services.ForeclosureService) *ForeclosureHandler {
	return &ForeclosureHandler{foreclosures: foreclosures}
}

// ListForInvestor handles GET /foreclosures. Institutional investors have
// full access; common investors need an active subscription.
func (h *ForeclosureHandler) ListForInvestor(c *gin.Context) {
	_, role := middleware.InvestorIdentityFromContext(c)
	if role == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	inv := middleware.CommonInvestorFromContext(c)
	if inv == nil {
		// Institutional session: no subscription gate.
		out, err := h.foreclosures.ListAdmin(c.Request.Context())
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		h.OK(c, out)
		return
	}

	out, err := h.foreclosures.ListForInvestor(c.Request.Context(), inv)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

// PublicPreview handles GET /public/foreclosures/preview.
func (h *ForeclosureHandler) PublicPreview(c *gin.Context) {
	out, err := h.foreclosures.PublicPreview(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *ForeclosureHandler) ListAdmin(c *gin.Context) {
	out, err := h.foreclosures.ListAdmin(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *ForeclosureHandler) Create(c *gin.Context) {
	var req services.ForeclosureRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	f, err := h.foreclosures.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, f)
}

func (h *ForeclosureHandler) Update(c *gin.Context) {
	var req services.ForeclosureRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	f, err := h.foreclosures.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, f)
}

// Toggle handles PATCH /admin/foreclosures/:id/toggle.
func (h *ForeclosureHandler) Toggle(c *gin.Context) {
	active, err := h.foreclosures.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"id": c.Param("id"), "is_active": active})
}

func (h *ForeclosureHandler) Delete(c *gin.Context) {
	if err := h.foreclosures.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
