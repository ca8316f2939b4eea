package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-manager-bot/internal/auth"
	"task-manager-bot/internal/config"
	"task-manager-bot/internal/middleware"
	"task-manager-bot/internal/models"
	"task-manager-bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func apiRouter(t *testing.T) (*gin.Engine, *Handler, string) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler(t, config.Config{}, nil)
	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	api.GET("/tasks", h.GetTasks)
	api.GET("/tasks/:id", h.GetTaskByID)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.GET("/stats", h.GetStats)
	api.GET("/stats/:userid", h.GetStatsByUser)
	api.GET("/users", h.GetAllUsers)

	token, err := auth.GenerateToken(1, "U1", "alice")
	require.NoError(t, err)
	return r, h, token
}

func apiGet(r *gin.Engine, token, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTaskByID(t *testing.T) {
	r, h, token := apiRouter(t)

	creator, err := h.users.FindOrCreate("U1", service.ProfileHints{Name: "alice"})
	require.NoError(t, err)
	task, err := h.tasks.Create(service.CreateTaskInput{Title: "visible", CreatorID: creator.ID})
	require.NoError(t, err)
	_, err = h.tasks.AddComment(task.ID, creator.ID, "note")
	require.NoError(t, err)

	w := apiGet(r, token, fmt.Sprintf("/api/tasks/%d", task.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "visible", got.Title)
	require.NotNil(t, got.Creator)
	require.Len(t, got.Comments, 1)

	require.Equal(t, http.StatusNotFound, apiGet(r, token, "/api/tasks/999").Code)
	require.Equal(t, http.StatusUnauthorized, apiGet(r, "bad-token", "/api/tasks/1").Code)
}

func TestGetTasks_FilterByAssigneeAndStatus(t *testing.T) {
	r, h, token := apiRouter(t)

	alice, err := h.users.FindOrCreate("U1", service.ProfileHints{Name: "alice"})
	require.NoError(t, err)
	task, err := h.tasks.Create(service.CreateTaskInput{Title: "mine", CreatorID: alice.ID, AssigneeID: &alice.ID})
	require.NoError(t, err)
	_, err = h.tasks.UpdateStatus(task.ID, models.StatusInProgress, alice.ID, "")
	require.NoError(t, err)
	_, err = h.tasks.Create(service.CreateTaskInput{Title: "other", CreatorID: alice.ID})
	require.NoError(t, err)

	w := apiGet(r, token, fmt.Sprintf("/api/tasks?assignee=%d&status=in_progress", alice.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "mine", resp.Tasks[0].Title)

	require.Equal(t, http.StatusBadRequest, apiGet(r, token, "/api/tasks?assignee=1&status=bogus").Code)
	require.Equal(t, http.StatusBadRequest, apiGet(r, token, "/api/tasks").Code)
}

func TestDeleteTask(t *testing.T) {
	r, h, token := apiRouter(t)

	creator, err := h.users.FindOrCreate("U1", service.ProfileHints{})
	require.NoError(t, err)
	task, err := h.tasks.Create(service.CreateTaskInput{Title: "doomed", CreatorID: creator.ID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = h.tasks.GetByID(task.ID)
	require.Error(t, err)
}

func TestGetStatsByUser(t *testing.T) {
	r, h, token := apiRouter(t)

	alice, err := h.users.FindOrCreate("U1", service.ProfileHints{})
	require.NoError(t, err)
	taskA, err := h.tasks.Create(service.CreateTaskInput{Title: "a", CreatorID: alice.ID, AssigneeID: &alice.ID})
	require.NoError(t, err)
	_, err = h.tasks.Create(service.CreateTaskInput{Title: "b", CreatorID: alice.ID, AssigneeID: &alice.ID})
	require.NoError(t, err)
	_, err = h.tasks.UpdateStatus(taskA.ID, models.StatusComplete, alice.ID, "")
	require.NoError(t, err)

	w := apiGet(r, token, fmt.Sprintf("/api/stats/%d", alice.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats map[string]int64 `json:"stats"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, int64(2), resp.Total)
	require.Equal(t, int64(1), resp.Stats["complete"])
	require.Equal(t, int64(1), resp.Stats["not_started"])
	_, present := resp.Stats["blocked"]
	require.False(t, present)
}

func TestGetAllUsers(t *testing.T) {
	r, h, token := apiRouter(t)

	_, err := h.users.FindOrCreate("U1", service.ProfileHints{Name: "alice"})
	require.NoError(t, err)
	_, err = h.users.FindOrCreate("U2", service.ProfileHints{Name: "bob"})
	require.NoError(t, err)

	w := apiGet(r, token, "/api/users")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users []UserResponse `json:"users"`
		Count int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	require.Equal(t, "alice", resp.Users[0].Username)
}
