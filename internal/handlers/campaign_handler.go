package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/services"
)

type CampaignHandler struct {
	BaseHandler
	campaigns services.CampaignService
}

func NewCampaignHandler(campaigns services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) List(c *gin.Context) {
	out, err := h.campaigns.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	camp, err := h.campaigns.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, camp)
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req services.CampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	camp, err := h.campaigns.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, camp)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	var req services.CampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	camp, err := h.campaigns.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, camp)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	if err := h.campaigns.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// Send handles POST /admin/campaigns/:id/send. Sending is one-shot; a sent
// campaign cannot be sent again.
func (h *CampaignHandler) Send(c *gin.Context) {
	camp, err := h.campaigns.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, camp)
}
