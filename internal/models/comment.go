package models

import (
	"fmt"
	"time"
)

// CommentType distinguishes plain comments from automated annotations.
type CommentType string

const (
	CommentPlain        CommentType = "comment"
	CommentStatusUpdate CommentType = "status_update"
	CommentSystem       CommentType = "system"
)

// ParseCommentType validates a raw comment type coming from the boundary.
func ParseCommentType(s string) (CommentType, error) {
	switch CommentType(s) {
	case CommentPlain, CommentStatusUpdate, CommentSystem:
		return CommentType(s), nil
	}
	return "", fmt.Errorf("unknown comment type %q", s)
}

// Comment is an annotation on a single task, authored by a single user.
// Comments are deleted with their task (cascade on task_id).
type Comment struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TaskID      uint        `json:"taskId" gorm:"column:task_id;not null"`
	UserID      uint        `json:"userId" gorm:"column:user_id;not null"`
	Author      *User       `json:"author,omitempty" gorm:"foreignKey:UserID"`
	Content     string      `json:"content" gorm:"not null"`
	CommentType CommentType `json:"commentType" gorm:"column:comment_type;size:20;default:'comment'"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Comment Model
func (Comment) TableName() string {
	return "comments"
}
