package rest

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

func (h *handler) listPlants(c *gin.Context) {
	plants, err := h.Plants.List(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

// createPlant accepts multipart form fields plus an optional "photo" file,
// or a JSON draft without a photo.
func (h *handler) createPlant(c *gin.Context) {
	h.limitBody(c)

	var (
		draft models.PlantDraft
		photo *models.Photo
		err   error
	)
	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		if err := c.ShouldBindJSON(&draft); err != nil {
			abort(c, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if draft, err = draftFromForm(c); err != nil {
			h.fail(c, err)
			return
		}
		if photo, err = h.formFile(c, "photo"); err != nil {
			h.fail(c, err)
			return
		}
	}

	p, err := h.Plants.Create(c.Request.Context(), currentUser(c), draft, photo)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func draftFromForm(c *gin.Context) (models.PlantDraft, error) {
	d := models.PlantDraft{
		Name:              c.PostForm("name"),
		ScientificName:    c.PostForm("scientificName"),
		Location:          c.PostForm("location"),
		Sunlight:          c.PostForm("sunlight"),
		Humidity:          c.PostForm("humidity"),
		Notes:             c.PostForm("notes"),
		FertilizerDetails: c.PostForm("fertilizerDetails"),
	}

	numbers := []struct {
		field string
		dst   *int
	}{
		{"wateringFrequency", &d.WateringFrequency},
		{"fertilizingFrequency", &d.FertilizingFrequency},
		{"groomingFrequency", &d.GroomingFrequency},
	}
	for _, n := range numbers {
		v := strings.TrimSpace(c.PostForm(n.field))
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return d, fmt.Errorf("%w: %s must be a number", common.ErrorValidation, n.field)
		}
		*n.dst = i
	}
	return d, nil
}

func (h *handler) updatePlant(c *gin.Context) {
	patch, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Plants.Update(c.Request.Context(), currentUser(c), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) deletePlant(c *gin.Context) {
	if err := h.Plants.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type activityRequest struct {
	Activity string `json:"activity"`
}

func (h *handler) logActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Plants.LogActivity(c.Request.Context(), currentUser(c), c.Param("id"), req.Activity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) stats(c *gin.Context) {
	st, err := h.Plants.Stats(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
