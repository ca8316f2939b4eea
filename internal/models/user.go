package models

import (
	"fmt"
	"time"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// ParseUserRole validates a raw role value coming from the boundary.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User represents a user in the system, keyed by the Slack user ID.
// Users are never hard-deleted; IsActive is flipped off instead.
type User struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	SlackID     string   `json:"slackId" gorm:"column:slack_id;size:50;uniqueIndex;not null"`
	Username    string   `json:"username" gorm:"size:100;not null"`
	Email       string   `json:"email,omitempty" gorm:"size:255"`
	DisplayName string   `json:"displayName,omitempty" gorm:"column:display_name;size:100"`
	Role        UserRole `json:"role" gorm:"size:20;default:'employee'"`
	Timezone    string   `json:"timezone" gorm:"size:50;default:'UTC'"`
	IsActive    bool     `json:"isActive" gorm:"column:is_active;default:true"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}

// Name returns the best human-readable reference for the user.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
