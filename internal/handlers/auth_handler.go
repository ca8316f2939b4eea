package handlers

import (
	"net/http"

	"task-manager-bot/internal/auth"
	"task-manager-bot/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// Login handles the dashboard login endpoint
// POST /api/login
// The credential is the ops account from configuration; the password is
// checked against its bcrypt hash.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. Username and password are required.",
		})
		return
	}

	if h.cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Dashboard login is not configured.",
		})
		return
	}

	if req.Username != h.cfg.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid username or password.",
		})
		return
	}

	// The ops account is a regular directory entry keyed by a synthetic id,
	// so dashboard actions resolve to a real user row.
	user, err := h.users.FindOrCreate("ops-"+req.Username, service.ProfileHints{Name: req.Username})
	if err != nil {
		h.apiError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.SlackID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Message:  "Login successful",
	})
}
