package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerida/internal/models"
)

// Checkout handlers. These back the shareable link and are public:
// anyone holding /ticket/:id can view the event and buy.

// TicketPage - GET /ticket/:id
// Resolves the shareable link to the event payload
func (h *Handlers) TicketPage(c *gin.Context) {
	event, err := h.services.Events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to resolve ticket link")
		return
	}

	c.JSON(http.StatusOK, event)
}

// QuoteOrder - POST /ticket/:id/quote
// Prices the requested quantities with per-line clamping; no side
// effects, so the UI can call it on every adjustment
func (h *Handlers) QuoteOrder(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.services.Checkout.Quote(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to quote order")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// PurchaseTickets - POST /ticket/:id/purchase
// The authoritative path: strict revalidation, atomic decrement
func (h *Handlers) PurchaseTickets(c *gin.Context) {
	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.services.Checkout.Purchase(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to purchase tickets")
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}
