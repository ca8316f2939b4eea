package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"task-manager-bot/internal/bot"
	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/models"
	"task-manager-bot/internal/realtime"

	"github.com/gin-gonic/gin"
)

/*
*
GetTasks handles GET /api/tasks
Returns tasks for the dashboard.
Optional query params: assignee (internal user id), status (comma-separated).
*/
func (h *Handler) GetTasks(c *gin.Context) {
	assigneeStr := c.Query("assignee")
	if assigneeStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignee query param is required"})
		return
	}
	assigneeID, err := bot.ParseTaskID(assigneeStr)
	if err != nil {
		h.apiError(c, &errs.ValidationError{Field: "assignee", Reason: "must be a numeric user id"})
		return
	}

	var statuses []models.TaskStatus
	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, err := models.ParseTaskStatus(strings.TrimSpace(part))
			if err != nil {
				h.apiError(c, &errs.ValidationError{Field: "status", Reason: err.Error()})
				return
			}
			statuses = append(statuses, status)
		}
	}

	tasks, err := h.tasks.GetUserTasks(assigneeID, statuses...)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// GetTaskByID handles GET /api/tasks/:id
// Returns a single task with creator, assignee, and comments resolved.
func (h *Handler) GetTaskByID(c *gin.Context) {
	taskID, err := bot.ParseTaskID(c.Param("id"))
	if err != nil {
		h.apiError(c, err)
		return
	}

	task, err := h.tasks.GetByID(taskID)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// Removes a task; its comments are removed by the cascade constraint.
func (h *Handler) DeleteTask(c *gin.Context) {
	taskID, err := bot.ParseTaskID(c.Param("id"))
	if err != nil {
		h.apiError(c, err)
		return
	}

	if err := h.tasks.Delete(taskID); err != nil {
		h.apiError(c, err)
		return
	}

	realtime.GetHub().BroadcastEvent(
		realtime.Event{Type: realtime.EventTaskDeleted, TaskID: taskID, SlackID: c.GetString("slack_id"), Version: 1},
		c.GetString("slack_id"),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}

// GetStats handles GET /api/stats
// Returns counts of tasks by status across all assignees. Statuses with no
// tasks are absent; clients default missing keys to zero.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.tasks.GetStats(nil)
	if err != nil {
		h.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetStatsByUser handles GET /api/stats/:userid
// Returns counts of tasks by status where the assignee matches :userid.
func (h *Handler) GetStatsByUser(c *gin.Context) {
	userID64, err := strconv.ParseUint(c.Param("userid"), 10, 32)
	if err != nil {
		h.apiError(c, &errs.ValidationError{Field: "userid", Reason: "must be a numeric user id"})
		return
	}
	userID := uint(userID64)

	stats, err := h.tasks.GetStats(&userID)
	if err != nil {
		h.apiError(c, err)
		return
	}

	var total int64
	for _, n := range stats {
		total += n
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
		"total": total,
	})
}
