package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerida/internal/models"
)

// Brand handlers

// CreateBrand - POST /api/brands
func (h *Handlers) CreateBrand(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.services.Brands.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create brand")
		return
	}

	c.JSON(http.StatusCreated, brand)
}

// ListBrands - GET /api/brands
// Brands the caller administers
func (h *Handlers) ListBrands(c *gin.Context) {
	brands, err := h.services.Brands.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to list brands")
		return
	}

	c.JSON(http.StatusOK, brands)
}

// UpdateBrandBank - PATCH /api/brands/:id/bank
// A nil bank_details clears the payout configuration
func (h *Handlers) UpdateBrandBank(c *gin.Context) {
	var req models.UpdateBrandBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.services.Brands.SetBankDetails(c.Request.Context(), currentUserID(c), c.Param("id"), req.BankDetails)
	if err != nil {
		respondError(c, err, "Failed to update brand bank details")
		return
	}

	c.JSON(http.StatusOK, brand)
}

// AddBrandAdmin - POST /api/brands/:id/admins
func (h *Handlers) AddBrandAdmin(c *gin.Context) {
	var req models.AddBrandAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand, err := h.services.Brands.AddAdmin(c.Request.Context(), currentUserID(c), c.Param("id"), req.Email)
	if err != nil {
		respondError(c, err, "Failed to add brand admin")
		return
	}

	c.JSON(http.StatusOK, brand)
}
