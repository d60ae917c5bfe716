package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lerida/internal/models"
)

// Event handlers

// CreateEvent - POST /api/events
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.EventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents - GET /api/events
// Events the caller created or administers via brand
func (h *Handlers) ListEvents(c *gin.Context) {
	events, err := h.services.Events.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent - GET /api/events/:id
func (h *Handlers) GetEvent(c *gin.Context) {
	event, err := h.services.Events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent - PUT /api/events/:id
// Replaces editable fields; id, creator and shareable link are
// preserved, ticket stock is restocked to the submitted quantities
func (h *Handlers) UpdateEvent(c *gin.Context) {
	var req models.EventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Update(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent - DELETE /api/events/:id
func (h *Handlers) DeleteEvent(c *gin.Context) {
	if err := h.services.Events.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}

	c.Status(http.StatusOK)
}

// SearchEvents - GET /api/events/search
func (h *Handlers) SearchEvents(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	items, err := h.services.Events.Search(c.Request.Context(), query, size)
	if err != nil {
		respondError(c, err, "Failed to search events")
		return
	}

	c.JSON(http.StatusOK, items)
}
