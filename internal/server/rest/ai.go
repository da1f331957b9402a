package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

func (h *handler) chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.AI.Chat(c.Request.Context(), req.Prompt, req.History)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{Response: text})
}

// image reads the required "image" upload of the identify and autofill
// endpoints.
func (h *handler) image(c *gin.Context) (models.Photo, error) {
	h.limitBody(c)

	img, err := h.formFile(c, "image")
	if err != nil {
		return models.Photo{}, err
	}
	if img == nil {
		return models.Photo{}, fmt.Errorf("%w: image is required", common.ErrorValidation)
	}
	return *img, nil
}

func (h *handler) identify(c *gin.Context) {
	img, err := h.image(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.AI.Identify(c.Request.Context(), img)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) autofill(c *gin.Context) {
	img, err := h.image(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.AI.Autofill(c.Request.Context(), img)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) fertilizerSuggestion(c *gin.Context) {
	var req models.FertilizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.AI.FertilizerSuggestion(c.Request.Context(), req.Name, req.ScientificName)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.FertilizerSuggestion{Suggestion: text})
}
