package handlers

import (
	"errors"
	"net/http"

	"riadsiena/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the typed sheet content behind /api/sheets.
type ContentHandler struct {
	Content content.Service
	Logger  *zap.Logger
}

func NewContentHandler(svc content.Service, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{Content: svc, Logger: logger}
}

// GetSheet resolves the :sheet segment against the static sheet map and
// returns the transformed rows. Unknown segments are 404s; store failures
// are 500s with the cause logged, never stale data.
func (h *ContentHandler) GetSheet(c *gin.Context) {
	segment := c.Param("sheet")
	page := c.Query("page")

	data, err := h.Content.Get(c.Request.Context(), segment, page)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrUnknownSheet):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown sheet"})
		case errors.Is(err, content.ErrPageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		default:
			h.Logger.Error("content: fetch failed",
				zap.String("sheet", segment), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		}
		return
	}

	c.JSON(http.StatusOK, data)
}
