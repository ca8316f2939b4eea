package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserResponse struct {
	ID          uint   `json:"id"`
	SlackID     string `json:"slackId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role"`
}

// GetAllUsers returns the active users ordered by name (protected)
// GET /api/users
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.users.GetAllActive()
	if err != nil {
		h.apiError(c, err)
		return
	}

	// Map to safe response payload
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{
			ID:          u.ID,
			SlackID:     u.SlackID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Role:        string(u.Role),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"users": resp,
		"count": len(resp),
	})
}
