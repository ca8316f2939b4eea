package models

import (
	"fmt"
	"time"
)

// TaskStatus represents the lifecycle status of a task
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusBlocked    TaskStatus = "blocked"
	StatusReview     TaskStatus = "review"
	StatusComplete   TaskStatus = "complete"
)

// AllStatuses lists every defined lifecycle status.
var AllStatuses = []TaskStatus{
	StatusNotStarted,
	StatusInProgress,
	StatusBlocked,
	StatusReview,
	StatusComplete,
}

// ParseTaskStatus validates a raw status value coming from the boundary.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusReview, StatusComplete:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Label renders the status for display, e.g. "In progress".
func (s TaskStatus) Label() string {
	out := []rune(s)
	for i, r := range out {
		if r == '_' {
			out[i] = ' '
		}
	}
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out[0] = out[0] - 'a' + 'A'
	}
	return string(out)
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// ParseTaskPriority validates a raw priority value coming from the boundary.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return TaskPriority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Label renders the priority for display, e.g. "Medium".
func (p TaskPriority) Label() string {
	out := []rune(p)
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out[0] = out[0] - 'a' + 'A'
	}
	return string(out)
}

// Task represents a unit of work. Creator is required, assignee is optional
// (unassigned tasks are valid). CompletedAt is set only when the task enters
// the complete status, paired with progress = 100.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description,omitempty"`
	CreatorID   uint         `json:"creatorId" gorm:"column:creator_id;not null"`
	Creator     *User        `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	AssigneeID  *uint        `json:"assigneeId" gorm:"column:assignee_id"`
	Assignee    *User        `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Status      TaskStatus   `json:"status" gorm:"size:20;not null;default:'not_started'"`
	Priority    TaskPriority `json:"priority" gorm:"size:20;default:'medium'"`
	Progress    int          `json:"progress" gorm:"default:0"`
	DueDate     *time.Time   `json:"dueDate" gorm:"column:due_date"`
	CompletedAt *time.Time   `json:"completedAt" gorm:"column:completed_at"`
	Comments    []Comment    `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
