package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/services"
)

type LeadHandler struct {
	BaseHandler
	leads services.LeadService
}

func NewLeadHandler(leads services.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// Submit handles POST /public/leads, the unauthenticated contact form.
func (h *LeadHandler) Submit(c *gin.Context) {
	var req services.LeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	l, err := h.leads.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"id": l.ID, "message": "Thanks, we will be in touch."})
}

func (h *LeadHandler) ListAdmin(c *gin.Context) {
	out, err := h.leads.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req services.LeadStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	l, err := h.leads.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, l)
}
