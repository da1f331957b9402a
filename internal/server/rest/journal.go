package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handler) listJournal(c *gin.Context) {
	entries, err := h.Journal.List(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *handler) createJournalEntry(c *gin.Context) {
	h.limitBody(c)

	file, err := h.formFile(c, "file")
	if err != nil {
		h.fail(c, err)
		return
	}

	e, err := h.Journal.Create(c.Request.Context(), currentUser(c), c.PostForm("title"), c.PostForm("content"), file)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *handler) deleteJournalEntry(c *gin.Context) {
	if err := h.Journal.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) listArticles(c *gin.Context) {
	c.JSON(http.StatusOK, h.Articles.List())
}
