package handlers

import (
	"fmt"
	"net/http"

	"task-manager-bot/internal/bot"
	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/models"
	"task-manager-bot/internal/notify"
	"task-manager-bot/internal/realtime"
	"task-manager-bot/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormRequest is a task-creation form submission: the submitting user plus
// a flat field→value mapping matching the creation modal.
type FormRequest struct {
	UserID   string         `json:"user_id" binding:"required"`
	UserName string         `json:"user_name"`
	Values   bot.FormValues `json:"values" binding:"required"`
}

// Form handles POST /bot/forms: build a task from the submitted fields and
// notify the assignee.
func (h *Handler) Form(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, err := h.users.FindOrCreate(req.UserID, service.ProfileHints{Name: req.UserName})
	if err != nil {
		h.botError(c, err)
		return
	}

	form, err := bot.ParseCreateForm(req.Values)
	if err != nil {
		h.botError(c, err)
		return
	}

	input := service.CreateTaskInput{
		Title:       form.Title,
		Description: form.Description,
		CreatorID:   actor.ID,
	}

	if form.Priority != "" {
		priority, err := models.ParseTaskPriority(form.Priority)
		if err != nil {
			h.botError(c, &errs.ValidationError{Field: "priority", Reason: err.Error()})
			return
		}
		input.Priority = priority
	}

	if form.AssigneeSlackID != "" {
		assignee, err := h.users.FindOrCreate(form.AssigneeSlackID, service.ProfileHints{})
		if err != nil {
			h.botError(c, err)
			return
		}
		input.AssigneeID = &assignee.ID
	}

	task, err := h.tasks.Create(input)
	if err != nil {
		h.botError(c, err)
		return
	}

	h.broadcastTaskEvent(realtime.EventTaskCreated, task, actor.SlackID)

	// The assignee gets the assignment notification in their own channel.
	if task.Assignee != nil {
		if err := h.messenger.Post(task.Assignee.SlackID, notify.AssignmentNotification(task)); err != nil {
			h.log.Error("failed to notify assignee",
				zap.Uint("task_id", task.ID),
				zap.String("assignee", task.Assignee.SlackID),
				zap.Error(err))
		}
	}

	h.botReply(c, notify.Message{
		Text:   fmt.Sprintf("✅ Task #%d created: *%s*", task.ID, task.Title),
		Blocks: []notify.Block{notify.TaskCard(task)},
	})
}
