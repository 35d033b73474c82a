package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"homevest_backend/internal/repositories"
	"homevest_backend/internal/services"
	"homevest_backend/pkg/apperrors"
)

type PropertyHandler struct {
	BaseHandler
	properties services.PropertyService
	importer   services.ImportService
}

func NewPropertyHandler(properties services.PropertyService, importer services.ImportService) *PropertyHandler {
	return &PropertyHandler{properties: properties, importer: importer}
}

// ListPublic handles GET /public/properties with optional filters.
func (h *PropertyHandler) ListPublic(c *gin.Context) {
	f := repositories.PropertyFilter{
		City:         c.Query("city"),
		State:        c.Query("state"),
		PropertyType: c.Query("type"),
	}
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = p
		}
	}
	f.FeaturedOnly = c.Query("featured") == "true"

	out, err := h.properties.ListPublic(c.Request.Context(), f)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

// GetPublic handles GET /public/properties/:id. Soft-deleted listings stay
// reachable by direct id.
func (h *PropertyHandler) GetPublic(c *gin.Context) {
	p, err := h.properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, p)
}

func (h *PropertyHandler) ListAdmin(c *gin.Context) {
	out, err := h.properties.ListAdmin(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req services.PropertyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	p, err := h.properties.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, p)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	var req services.PropertyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	p, err := h.properties.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, p)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.properties.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// ImportFile handles POST /admin/properties/import/file with a multipart
// "file" field holding an .xlsx or .csv sheet.
func (h *PropertyHandler) ImportFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file upload field 'file'"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Could not read uploaded file"))
		return
	}
	defer f.Close()

	result, err := h.importer.ImportProperties(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, result)
}
