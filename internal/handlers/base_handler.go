package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homevest_backend/internal/validator"
	"homevest_backend/pkg/apperrors"
)

// BaseHandler carries the helpers every handler shares.
type BaseHandler struct{}

// BindAndValidateJSON decodes the body into req and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON body"))
		return false
	}
	if details := validator.Struct(req); details != nil {
		apperrors.HandleError(c, apperrors.ValidationError(details))
		return false
	}
	return true
}

// HandleServiceError renders a service-layer error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
