package notify

import (
	"fmt"

	"task-manager-bot/internal/models"
)

var priorityEmoji = map[models.TaskPriority]string{
	models.PriorityLow:    "🟢",
	models.PriorityMedium: "🟡",
	models.PriorityHigh:   "🟠",
	models.PriorityUrgent: "🔴",
}

var statusEmoji = map[models.TaskStatus]string{
	models.StatusNotStarted: "⚪",
	models.StatusInProgress: "🟡",
	models.StatusBlocked:    "🔴",
	models.StatusReview:     "🔵",
	models.StatusComplete:   "🟢",
}

// taskValue encodes an operation plus its task id into an element value.
func taskValue(op string, taskID uint) string {
	return fmt.Sprintf("%s_%d", op, taskID)
}

// TaskCard renders a task as a single section block with an overflow menu
// of follow-up actions.
func TaskCard(task *models.Task) Block {
	assigneeText := "Unassigned"
	if task.Assignee != nil {
		assigneeText = fmt.Sprintf("<@%s>", task.Assignee.SlackID)
	}

	dueText := "Not set"
	if task.DueDate != nil {
		dueText = task.DueDate.Format("Jan 2, 2006")
	}

	description := task.Description
	if description == "" {
		description = "_No description_"
	}

	progressText := ""
	if task.Progress > 0 {
		progressText = fmt.Sprintf(" (%d%%)", task.Progress)
	}

	text := fmt.Sprintf(
		"*📋 %s*\n%s\n\n*Assigned to:* %s\n*Due:* %s\n*Priority:* %s %s\n*Status:* %s %s%s",
		task.Title,
		description,
		assigneeText,
		dueText,
		priorityEmoji[task.Priority], task.Priority.Label(),
		statusEmoji[task.Status], task.Status.Label(),
		progressText,
	)

	card := section(text)
	card.Accessory = &Element{
		Type:     "overflow",
		ActionID: ActionOverflowMenu,
		Options: []Option{
			{Text: plain("Mark Complete"), Value: taskValue(ActionCompleteTask, task.ID)},
			{Text: plain("Update Status"), Value: taskValue(ActionUpdateStatus, task.ID)},
			{Text: plain("Add Comment"), Value: taskValue(ActionAddComment, task.ID)},
		},
	}
	return card
}

// StatusButton renders a button that moves a task to the given status.
// The value encodes the target status alongside the task id.
func StatusButton(taskID uint, status models.TaskStatus, style string) Element {
	value := fmt.Sprintf("set_%s_task_%d", status, taskID)
	return button(statusEmoji[status]+" "+status.Label(), ActionSetStatus, value, style)
}

// AssignmentNotification is sent to the assignee of a newly created task,
// offering accept and ask-question follow-ups.
func AssignmentNotification(task *models.Task) Message {
	return Message{
		Text: fmt.Sprintf("New task assigned: %s", task.Title),
		Blocks: []Block{
			header("📋 New Task Assigned"),
			TaskCard(task),
			{
				Type: "actions",
				Elements: []Element{
					button("✅ Accept Task", ActionAcceptTask, taskValue(ActionAcceptTask, task.ID), "primary"),
					button("💬 Ask Question", ActionAskQuestion, taskValue(ActionAskQuestion, task.ID), ""),
				},
			},
		},
	}
}

// TaskList renders a heading plus a card per task.
func TaskList(title string, tasks []models.Task) Message {
	if len(tasks) == 0 {
		return Message{
			Text:   title,
			Blocks: []Block{section("*🎯 No active tasks*\nYou're all caught up! 🎉")},
		}
	}

	blocks := make([]Block, 0, len(tasks)+1)
	blocks = append(blocks, section(fmt.Sprintf("*%s*", title)))
	for i := range tasks {
		blocks = append(blocks, TaskCard(&tasks[i]))
	}
	return Message{Text: title, Blocks: blocks}
}

// HomeView renders the dashboard: quick stats and up to three active tasks.
// Missing statuses count as zero.
func HomeView(tasks []models.Task, stats map[models.TaskStatus]int64) Message {
	active := stats[models.StatusNotStarted] +
		stats[models.StatusInProgress] +
		stats[models.StatusBlocked] +
		stats[models.StatusReview]

	blocks := []Block{
		header("📋 Task Management Dashboard"),
		{
			Type: "actions",
			Elements: []Element{
				button("➕ Create Task", ActionCreateTask, "", "primary"),
				button("📊 My Tasks", ActionViewMyTasks, "", ""),
			},
		},
		section("*📈 Quick Stats*"),
		{
			Type: "section",
			Fields: []TextObject{
				{Type: TextMarkdown, Text: fmt.Sprintf("*Active Tasks:*\n%d", active)},
				{Type: TextMarkdown, Text: fmt.Sprintf("*Completed:*\n%d", stats[models.StatusComplete])},
				{Type: TextMarkdown, Text: fmt.Sprintf("*In Progress:*\n%d", stats[models.StatusInProgress])},
				{Type: TextMarkdown, Text: fmt.Sprintf("*Blocked:*\n%d", stats[models.StatusBlocked])},
			},
		},
		divider(),
	}

	if len(tasks) == 0 {
		blocks = append(blocks, section("*🎯 No active tasks*\nYou're all caught up! 🎉"))
	} else {
		blocks = append(blocks, section("*🎯 My Active Tasks*"))
		show := tasks
		if len(show) > 3 {
			show = show[:3]
		}
		for i := range show {
			blocks = append(blocks, TaskCard(&show[i]))
		}
		if len(tasks) > 3 {
			blocks = append(blocks, section(fmt.Sprintf("_... and %d more tasks_", len(tasks)-3)))
		}
	}

	return Message{Text: "Task Management Dashboard", Blocks: blocks}
}

// Reminder is the scheduled supply-check notification.
func Reminder(dayName string) Message {
	text := fmt.Sprintf(
		"🏥 *Supply Check - %s*\n\n"+
			"Good morning! Time for your scheduled supply check.\n\n"+
			"📋 *Today's Tasks:*\n"+
			"• Check all exam rooms\n"+
			"• Verify glove and mask supplies\n"+
			"• Check hand sanitizer levels\n"+
			"• Verify equipment functionality\n\n"+
			"⏰ *Due by:* 10:00 AM\n"+
			"📱 Use `/supply-check start` to begin your check!",
		dayName,
	)
	return Message{Text: text}
}
