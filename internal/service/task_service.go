package service

import (
	"errors"
	"strings"
	"time"

	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxTitleLen matches the tasks.title column size.
const maxTitleLen = 255

// now is a small indirection to allow test stubbing of completion times.
var now = time.Now

// CreateTaskInput carries the fields accepted by TaskService.Create.
// Status is not accepted: new tasks always start as not_started.
type CreateTaskInput struct {
	Title       string
	Description string
	CreatorID   uint
	AssigneeID  *uint
	Priority    models.TaskPriority // empty defaults to medium
	DueDate     *time.Time
}

// TaskService implements the task lifecycle: creation, status transitions,
// comments, and per-assignee queries and stats.
type TaskService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTaskService(db *gorm.DB, log *zap.Logger) *TaskService {
	return &TaskService{db: db, log: log}
}

// Create persists a new task and returns it with associations resolved.
func (s *TaskService) Create(in CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &errs.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len(title) > maxTitleLen {
		return nil, &errs.ValidationError{Field: "title", Reason: "too long"}
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	if err := s.db.First(&models.User{}, in.CreatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errs.NotFoundError{Entity: "user", ID: in.CreatorID}
		}
		return nil, errs.FromStore("resolve creator", err)
	}
	if in.AssigneeID != nil {
		if err := s.db.First(&models.User{}, *in.AssigneeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &errs.NotFoundError{Entity: "user", ID: *in.AssigneeID}
			}
			return nil, errs.FromStore("resolve assignee", err)
		}
	}

	task := models.Task{
		Title:       title,
		Description: in.Description,
		CreatorID:   in.CreatorID,
		AssigneeID:  in.AssigneeID,
		Status:      models.StatusNotStarted,
		Priority:    priority,
		Progress:    0,
		DueDate:     in.DueDate,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, errs.FromStore("create task", err)
	}

	s.log.Info("task created",
		zap.Uint("task_id", task.ID),
		zap.Uint("creator_id", task.CreatorID))
	return s.GetByID(task.ID)
}

// GetByID fetches a task with creator, assignee, and comments (with their
// authors, oldest first) eagerly resolved.
func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.
		Preload("Creator").
		Preload("Assignee").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "task", ID: id}
	}
	if err != nil {
		return nil, errs.FromStore("get task", err)
	}
	return &task, nil
}

// UpdateStatus moves a task to the given status. Entering complete forces
// progress to 100 and stamps CompletedAt regardless of prior progress; when
// the task has an assignee, only that assignee may complete it. A non-empty
// comment is recorded as a status_update annotation in the same transaction
// as the status write.
func (s *TaskService) UpdateStatus(taskID uint, status models.TaskStatus, actingUserID uint, comment string) (*models.Task, error) {
	if _, err := models.ParseTaskStatus(string(status)); err != nil {
		return nil, &errs.ValidationError{Field: "status", Reason: err.Error()}
	}

	var task models.Task
	err := s.db.First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.NotFoundError{Entity: "task", ID: taskID}
	}
	if err != nil {
		return nil, errs.FromStore("get task", err)
	}

	if status == models.StatusComplete && task.AssigneeID != nil && *task.AssigneeID != actingUserID {
		return nil, &errs.AuthorizationError{Reason: "only the assignee can complete this task"}
	}

	updates := map[string]any{"status": status}
	if status == models.StatusComplete {
		updates["progress"] = 100
		updates["completed_at"] = now()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return err
		}
		if comment != "" {
			c := models.Comment{
				TaskID:      taskID,
				UserID:      actingUserID,
				Content:     comment,
				CommentType: models.CommentStatusUpdate,
			}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.FromStore("update task status", err)
	}

	s.log.Info("task status updated",
		zap.Uint("task_id", taskID),
		zap.String("status", string(status)),
		zap.Uint("acting_user_id", actingUserID))
	return s.GetByID(taskID)
}

// GetUserTasks returns the tasks assigned to userID, newest first,
// optionally restricted to a set of statuses.
func (s *TaskService) GetUserTasks(userID uint, statuses ...models.TaskStatus) ([]models.Task, error) {
	query := s.db.
		Preload("Creator").
		Preload("Assignee").
		Where("assignee_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var tasks []models.Task
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, errs.FromStore("list user tasks", err)
	}
	return tasks, nil
}

// GetStats returns a status→count map, scoped to the assignee when non-nil.
// Statuses with no tasks are absent from the map.
func (s *TaskService) GetStats(userID *uint) (map[models.TaskStatus]int64, error) {
	type row struct {
		Status models.TaskStatus
		Count  int64
	}

	query := s.db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Group("status")
	if userID != nil {
		query = query.Where("assignee_id = ?", *userID)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errs.FromStore("task stats", err)
	}

	stats := make(map[models.TaskStatus]int64, len(rows))
	for _, r := range rows {
		stats[r.Status] = r.Count
	}
	return stats, nil
}

// AddComment appends a plain comment to a task and returns it with the
// author resolved.
func (s *TaskService) AddComment(taskID, userID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &errs.ValidationError{Field: "content", Reason: "must not be empty"}
	}

	if err := s.db.First(&models.Task{}, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errs.NotFoundError{Entity: "task", ID: taskID}
		}
		return nil, errs.FromStore("get task", err)
	}

	comment := models.Comment{
		TaskID:      taskID,
		UserID:      userID,
		Content:     content,
		CommentType: models.CommentPlain,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, errs.FromStore("add comment", err)
	}

	if err := s.db.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, errs.FromStore("reload comment", err)
	}
	return &comment, nil
}

// Delete removes a task; its comments go with it via the cascade constraint.
func (s *TaskService) Delete(taskID uint) error {
	res := s.db.Delete(&models.Task{}, taskID)
	if res.Error != nil {
		return errs.FromStore("delete task", res.Error)
	}
	if res.RowsAffected == 0 {
		return &errs.NotFoundError{Entity: "task", ID: taskID}
	}
	s.log.Info("task deleted", zap.Uint("task_id", taskID))
	return nil
}
