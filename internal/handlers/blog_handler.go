package handlers

import (
	"github.com/gin-gonic/gin"

	"homevest_backend/internal/services"
	"homevest_backend/internal/storage"
	"homevest_backend/pkg/apperrors"
)

type BlogHandler struct {
	BaseHandler
	blogs   services.BlogService
	uploads storage.Storage
}

func NewBlogHandler(blogs services.BlogService, uploads storage.Storage) *BlogHandler {
	return &BlogHandler{blogs: blogs, uploads: uploads}
}

func (h *BlogHandler) ListPublic(c *gin.Context) {
	out, err := h.blogs.ListPublished(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *BlogHandler) GetPublicBySlug(c *gin.Context) {
	b, err := h.blogs.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, b)
}

func (h *BlogHandler) ListAdmin(c *gin.Context) {
	out, err := h.blogs.ListAdmin(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, out)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req services.BlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	b, err := h.blogs.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, b)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req services.BlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	b, err := h.blogs.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, b)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// UploadImage handles POST /admin/blogs/upload-image and returns the public
// URL for embedding in post content.
func (h *BlogHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing file upload field 'image'"))
		return
	}
	url, err := h.uploads.Save(fileHeader, "blog")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}
	h.Created(c, gin.H{"url": url})
}
