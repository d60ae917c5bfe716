package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerida/internal/models"
)

// Auth handlers

// Register - POST /api/auth/register
// Creates an account and starts a session for it
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Identity.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, models.SessionResponse{User: user})
}

// Login - POST /api/auth/login
// Starts a session for any registered email
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Identity.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{User: user})
}

// Logout - POST /api/auth/logout
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.services.Identity.Logout(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusOK)
}

// Profile - GET /api/profile
func (h *Handlers) Profile(c *gin.Context) {
	user, err := h.services.Identity.Current(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, models.SessionResponse{User: user})
}

// UpdateProfile - PUT /api/profile
// Name and bank-details changes; setting bank details derives a fresh
// routing code
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Identity.UpdateProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{User: user})
}
