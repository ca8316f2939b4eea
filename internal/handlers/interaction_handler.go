package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"task-manager-bot/internal/bot"
	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/models"
	"task-manager-bot/internal/notify"
	"task-manager-bot/internal/realtime"
	"task-manager-bot/internal/service"

	"github.com/gin-gonic/gin"
)

// InteractionRequest is a button or overflow-menu invocation. Value carries
// the encoded operation plus task id, e.g. "complete_task_12".
type InteractionRequest struct {
	ActionID string `form:"action_id" json:"action_id"`
	Value    string `form:"value" json:"value" binding:"required"`
	UserID   string `form:"user_id" json:"user_id" binding:"required"`
	UserName string `form:"user_name" json:"user_name"`
}

// Interaction handles POST /bot/interactions.
func (h *Handler) Interaction(c *gin.Context) {
	var req InteractionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, err := h.users.FindOrCreate(req.UserID, service.ProfileHints{Name: req.UserName})
	if err != nil {
		h.botError(c, err)
		return
	}

	op, taskID, err := bot.ParseTaskAction(req.Value)
	if err != nil {
		h.botError(c, err)
		return
	}

	switch op {
	case notify.ActionAcceptTask:
		task, err := h.tasks.UpdateStatus(taskID, models.StatusInProgress, actor.ID, "Task accepted")
		if err != nil {
			h.botError(c, err)
			return
		}
		h.broadcastTaskEvent(realtime.EventTaskStatusChanged, task, actor.SlackID)
		h.botReply(c, notify.Message{
			Text:   fmt.Sprintf("✅ You accepted task #%d: *%s*", task.ID, task.Title),
			Blocks: []notify.Block{notify.TaskCard(task)},
		})

	case notify.ActionCompleteTask:
		task, err := h.tasks.UpdateStatus(taskID, models.StatusComplete, actor.ID, "")
		if err != nil {
			h.botError(c, err)
			return
		}
		h.broadcastTaskEvent(realtime.EventTaskStatusChanged, task, actor.SlackID)
		h.botReply(c, notify.Message{
			Text: fmt.Sprintf("✅ Task #%d marked complete.", task.ID),
		})

	case notify.ActionUpdateStatus:
		task, err := h.tasks.GetByID(taskID)
		if err != nil {
			h.botError(c, err)
			return
		}
		h.botReply(c, statusPicker(task))

	case notify.ActionAddComment, notify.ActionAskQuestion:
		if _, err := h.tasks.GetByID(taskID); err != nil {
			h.botError(c, err)
			return
		}
		h.botReply(c, notify.Message{
			Text: fmt.Sprintf("💬 Reply with `comment %d <text>` to comment on this task.", taskID),
		})

	default:
		// Status-picker buttons encode the target status: "set_<status>_task".
		if status, ok := statusFromOp(op); ok {
			task, err := h.tasks.UpdateStatus(taskID, status, actor.ID, "")
			if err != nil {
				h.botError(c, err)
				return
			}
			h.broadcastTaskEvent(realtime.EventTaskStatusChanged, task, actor.SlackID)
			h.botReply(c, notify.Message{
				Text:   fmt.Sprintf("🔄 Task #%d is now *%s*.", task.ID, task.Status.Label()),
				Blocks: []notify.Block{notify.TaskCard(task)},
			})
			return
		}
		h.botError(c, &errs.ValidationError{Field: "action", Reason: fmt.Sprintf("unknown operation %q", op)})
	}
}

// statusFromOp decodes "set_<status>_task" into a lifecycle status.
func statusFromOp(op string) (models.TaskStatus, bool) {
	if !strings.HasPrefix(op, "set_") || !strings.HasSuffix(op, "_task") {
		return "", false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(op, "set_"), "_task")
	status, err := models.ParseTaskStatus(raw)
	if err != nil {
		return "", false
	}
	return status, true
}

// statusPicker offers one button per lifecycle status for a task.
func statusPicker(task *models.Task) notify.Message {
	elements := make([]notify.Element, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		style := ""
		if s == task.Status {
			style = "primary"
		}
		elements = append(elements, notify.StatusButton(task.ID, s, style))
	}
	return notify.Message{
		Text: fmt.Sprintf("Update status of task #%d: *%s*", task.ID, task.Title),
		Blocks: []notify.Block{
			notify.TaskCard(task),
			{Type: "actions", Elements: elements},
		},
	}
}
