package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/models"
	"github.com/dmitrijs2005/plantpal/internal/server/ai"
)

func abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, models.ErrorResponse{Message: msg})
}

// fail maps a service error to a status code and message. Unexpected errors
// are logged and reported as "internal error".
func (h *handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		abort(c, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized):
		abort(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorAlreadyExists):
		abort(c, http.StatusBadRequest, "already exists")
	case errors.Is(err, ai.ErrUnavailable):
		abort(c, http.StatusInternalServerError, ai.FallbackMessage)
	case errors.Is(err, ai.ErrNotConfigured):
		abort(c, http.StatusInternalServerError, ai.ErrNotConfigured.Error())
	default:
		h.log.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		abort(c, http.StatusInternalServerError, "internal error")
	}
}
