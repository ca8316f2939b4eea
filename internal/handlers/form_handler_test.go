package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-manager-bot/internal/bot"
	"task-manager-bot/internal/config"
	"task-manager-bot/internal/models"
	"task-manager-bot/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func postForm(r *gin.Engine, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/bot/forms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestForm_CreateWithAssignee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	msgr := newCaptureMessenger()
	h, _ := newTestHandler(t, config.Config{}, msgr)
	r := gin.New()
	r.POST("/bot/forms", h.Form)

	w := postForm(r, FormRequest{
		UserID:   "U1",
		UserName: "manager",
		Values: bot.FormValues{
			bot.FieldTitle:       "Restock masks",
			bot.FieldDescription: "Rooms 1-8",
			bot.FieldAssignee:    "U2",
			bot.FieldPriority:    "urgent",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var msg notify.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Contains(t, msg.Text, "created")

	task, err := h.tasks.GetByID(1)
	require.NoError(t, err)
	require.Equal(t, "Restock masks", task.Title)
	require.Equal(t, models.PriorityUrgent, task.Priority)
	require.NotNil(t, task.Assignee)
	require.Equal(t, "U2", task.Assignee.SlackID)

	// The assignee got an assignment notification.
	require.Len(t, msgr.posts["U2"], 1)
	sent := msgr.posts["U2"][0]
	require.Contains(t, sent.Text, "Restock masks")
	require.Equal(t, "header", sent.Blocks[0].Type)
}

func TestForm_InvalidPriority(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler(t, config.Config{}, nil)
	r := gin.New()
	r.POST("/bot/forms", h.Form)

	w := postForm(r, FormRequest{
		UserID: "U1",
		Values: bot.FormValues{
			bot.FieldTitle:    "x",
			bot.FieldPriority: "extreme",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var msg notify.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Contains(t, msg.Text, "priority")

	// Nothing persisted.
	stats, err := h.tasks.GetStats(nil)
	require.NoError(t, err)
	require.Empty(t, stats)
}

func TestForm_MissingTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler(t, config.Config{}, nil)
	r := gin.New()
	r.POST("/bot/forms", h.Form)

	w := postForm(r, FormRequest{
		UserID: "U1",
		Values: bot.FormValues{bot.FieldDescription: "no title"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var msg notify.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Contains(t, msg.Text, "title")
}
