package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"task-manager-bot/internal/bot"
	"task-manager-bot/internal/models"
	"task-manager-bot/internal/notify"
	"task-manager-bot/internal/realtime"
	"task-manager-bot/internal/service"

	"github.com/gin-gonic/gin"
)

// CommandRequest is a slash-command invocation as delivered by the platform.
type CommandRequest struct {
	Command  string `form:"command" json:"command"`
	Text     string `form:"text" json:"text"`
	UserID   string `form:"user_id" json:"user_id" binding:"required"`
	UserName string `form:"user_name" json:"user_name"`
}

const helpText = "🏥 *Task Manager Commands*\n\n" +
	"• `help` - Show this help message\n" +
	"• `start` - Start a new supply check\n" +
	"• `status` - View your active tasks and stats\n" +
	"• `list` - List all your tasks\n" +
	"• `create <title>` - Create a new task\n" +
	"• `complete <task id>` - Mark a task as complete\n" +
	"• `comment <task id> <text>` - Comment on a task"

// activeStatuses are every status except complete.
var activeStatuses = []models.TaskStatus{
	models.StatusNotStarted,
	models.StatusInProgress,
	models.StatusBlocked,
	models.StatusReview,
}

// Command handles POST /bot/commands: resolve the acting user, dispatch the
// sub-action, reply with a message payload.
func (h *Handler) Command(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, err := h.users.FindOrCreate(req.UserID, service.ProfileHints{Name: req.UserName})
	if err != nil {
		h.botError(c, err)
		return
	}

	action, args := bot.ParseSubAction(req.Text)
	switch action {
	case "help":
		h.botReply(c, notify.Message{Text: helpText})
	case "start":
		h.commandStart(c, actor)
	case "status":
		h.commandStatus(c, actor)
	case "list":
		h.commandList(c, actor)
	case "create":
		h.commandCreate(c, actor, args)
	case "complete":
		h.commandComplete(c, actor, args)
	case "comment":
		h.commandComment(c, actor, args)
	default:
		h.botReply(c, notify.Message{
			Text: fmt.Sprintf("❓ Unknown command: `%s`\n\nUse `help` to see available commands.", action),
		})
	}
}

// commandStart opens a supply check: a task assigned to the caller, moved
// straight to in_progress.
func (h *Handler) commandStart(c *gin.Context, actor *models.User) {
	task, err := h.tasks.Create(service.CreateTaskInput{
		Title:       "Supply check",
		Description: "Check all exam rooms: gloves, masks, hand sanitizer, equipment functionality.",
		CreatorID:   actor.ID,
		AssigneeID:  &actor.ID,
		Priority:    models.PriorityHigh,
	})
	if err != nil {
		h.botError(c, err)
		return
	}
	task, err = h.tasks.UpdateStatus(task.ID, models.StatusInProgress, actor.ID, "Supply check started")
	if err != nil {
		h.botError(c, err)
		return
	}

	realtime.GetHub().BroadcastEvent(
		realtime.Event{Type: realtime.EventTaskCreated, TaskID: task.ID, SlackID: actor.SlackID, Version: 1},
		actor.SlackID,
	)

	msg := notify.Message{
		Text: fmt.Sprintf(
			"📋 *Starting Supply Check* (task #%d)\n\n"+
				"Please check all exam rooms for:\n"+
				"• Gloves (minimum 3 boxes per room)\n"+
				"• Masks (minimum 2 boxes per room)\n"+
				"• Hand sanitizer (check levels)\n"+
				"• Equipment functionality\n\n"+
				"Use `complete %d` when finished.",
			task.ID, task.ID),
		Blocks: []notify.Block{notify.TaskCard(task)},
	}
	h.botReply(c, msg)
}

func (h *Handler) commandStatus(c *gin.Context, actor *models.User) {
	tasks, err := h.tasks.GetUserTasks(actor.ID, activeStatuses...)
	if err != nil {
		h.botError(c, err)
		return
	}
	stats, err := h.tasks.GetStats(&actor.ID)
	if err != nil {
		h.botError(c, err)
		return
	}
	h.botReply(c, notify.HomeView(tasks, stats))
}

func (h *Handler) commandList(c *gin.Context, actor *models.User) {
	tasks, err := h.tasks.GetUserTasks(actor.ID)
	if err != nil {
		h.botError(c, err)
		return
	}
	h.botReply(c, notify.TaskList("📊 Your Tasks", tasks))
}

func (h *Handler) commandCreate(c *gin.Context, actor *models.User, args []string) {
	title := strings.Join(args, " ")
	task, err := h.tasks.Create(service.CreateTaskInput{
		Title:     title,
		CreatorID: actor.ID,
	})
	if err != nil {
		h.botError(c, err)
		return
	}

	realtime.GetHub().BroadcastEvent(
		realtime.Event{Type: realtime.EventTaskCreated, TaskID: task.ID, SlackID: actor.SlackID, Version: 1},
		actor.SlackID,
	)

	h.botReply(c, notify.Message{
		Text:   fmt.Sprintf("✅ Task #%d created: *%s*", task.ID, task.Title),
		Blocks: []notify.Block{notify.TaskCard(task)},
	})
}

func (h *Handler) commandComplete(c *gin.Context, actor *models.User, args []string) {
	if len(args) == 0 {
		h.botReply(c, notify.Message{Text: "⚠️ Usage: `complete <task id>`"})
		return
	}
	taskID, err := bot.ParseTaskID(args[0])
	if err != nil {
		h.botError(c, err)
		return
	}

	task, err := h.tasks.UpdateStatus(taskID, models.StatusComplete, actor.ID, "")
	if err != nil {
		h.botError(c, err)
		return
	}

	h.broadcastTaskEvent(realtime.EventTaskStatusChanged, task, actor.SlackID)
	h.botReply(c, notify.Message{
		Text: fmt.Sprintf("✅ *Task #%d Completed!*\n\nThank you for completing *%s*.", task.ID, task.Title),
	})
}

func (h *Handler) commandComment(c *gin.Context, actor *models.User, args []string) {
	if len(args) < 2 {
		h.botReply(c, notify.Message{Text: "⚠️ Usage: `comment <task id> <text>`"})
		return
	}
	taskID, err := bot.ParseTaskID(args[0])
	if err != nil {
		h.botError(c, err)
		return
	}

	comment, err := h.tasks.AddComment(taskID, actor.ID, strings.Join(args[1:], " "))
	if err != nil {
		h.botError(c, err)
		return
	}

	if task, err := h.tasks.GetByID(taskID); err == nil {
		h.broadcastTaskEvent(realtime.EventCommentAdded, task, actor.SlackID)
	}
	h.botReply(c, notify.Message{
		Text: fmt.Sprintf("💬 Comment added to task #%d: %s", taskID, comment.Content),
	})
}

// broadcastTaskEvent notifies the dashboard clients of everyone involved.
func (h *Handler) broadcastTaskEvent(eventType string, task *models.Task, actorSlackID string) {
	ids := []string{actorSlackID}
	if task.Creator != nil {
		ids = append(ids, task.Creator.SlackID)
	}
	if task.Assignee != nil {
		ids = append(ids, task.Assignee.SlackID)
	}
	realtime.GetHub().BroadcastEvent(
		realtime.Event{Type: eventType, TaskID: task.ID, SlackID: actorSlackID, Version: 1},
		ids...,
	)
}
