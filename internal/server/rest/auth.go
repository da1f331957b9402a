package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

func (h *handler) signIn(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			abort(c, http.StatusBadRequest, "invalid credentials")
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

func (h *handler) signUp(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.Users.SignUp(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			abort(c, http.StatusBadRequest, "email already registered")
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.TokenResponse{Token: token})
}
