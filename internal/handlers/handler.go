package handlers

import (
	"errors"
	"net/http"

	"task-manager-bot/internal/config"
	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/notify"
	"task-manager-bot/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the services behind the HTTP endpoints.
type Handler struct {
	users     *service.UserService
	tasks     *service.TaskService
	messenger notify.Messenger
	cfg       config.Config
	log       *zap.Logger
}

func New(users *service.UserService, tasks *service.TaskService, messenger notify.Messenger, cfg config.Config, log *zap.Logger) *Handler {
	return &Handler{
		users:     users,
		tasks:     tasks,
		messenger: messenger,
		cfg:       cfg,
		log:       log,
	}
}

// userMessage converts a service error into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errs.IsNotFound(err):
		return "❓ " + err.Error() + "."
	case errs.IsValidation(err):
		return "⚠️ " + err.Error() + "."
	case errs.IsAuthorization(err):
		return "🚫 " + err.Error() + "."
	default:
		return "❌ Something went wrong. Please try again."
	}
}

// apiError writes a REST error response with the status matching the kind.
func (h *Handler) apiError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errs.IsNotFound(err):
		status = http.StatusNotFound
	case errs.IsValidation(err):
		status = http.StatusBadRequest
	case errs.IsAuthorization(err):
		status = http.StatusForbidden
	case errs.IsConflict(err):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": userMessage(err)})
}

// botReply answers a bot endpoint. Platform endpoints always get a 200 with
// a message payload; errors become user-facing text, never HTTP failures.
func (h *Handler) botReply(c *gin.Context, msg notify.Message) {
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) botError(c *gin.Context, err error) {
	var store *errs.StoreUnavailableError
	if errors.As(err, &store) {
		h.log.Error("bot request failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, notify.Message{Text: userMessage(err)})
}
