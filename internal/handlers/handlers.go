package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lerida/internal/errors"
	"lerida/internal/service"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// Health - GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the service error taxonomy onto HTTP statuses.
// Inventory conflicts and the storage quota get their own statuses so
// the client can tell "pick fewer tickets" apart from "free up space".
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not permitted"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrEmailTaken.Error()})
	case errors.Is(err, apperrors.ErrInsufficientInventory):
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrInsufficientInventory.Error()})
	case errors.Is(err, apperrors.ErrStorageFull):
		c.JSON(http.StatusInsufficientStorage, gin.H{"error": apperrors.ErrStorageFull.Error()})
	default:
		slog.Error(fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// currentUserID returns the id set by the session middleware
func currentUserID(c *gin.Context) string {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
