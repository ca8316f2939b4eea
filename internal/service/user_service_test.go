package service

import (
	"testing"

	"task-manager-bot/internal/errs"
	"task-manager-bot/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFindOrCreate_CreatesWithHints(t *testing.T) {
	_, users, _ := newServices(t)

	u, err := users.FindOrCreate("U123", ProfileHints{
		Name:        "natalia",
		Email:       "natalia@example.com",
		DisplayName: "Natalia M",
		Timezone:    "America/New_York",
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, "U123", u.SlackID)
	require.Equal(t, "natalia", u.Username)
	require.Equal(t, "Natalia M", u.DisplayName)
	require.Equal(t, "America/New_York", u.Timezone)
	require.Equal(t, models.RoleEmployee, u.Role)
	require.True(t, u.IsActive)
}

func TestFindOrCreate_FallbackDefaults(t *testing.T) {
	_, users, _ := newServices(t)

	u, err := users.FindOrCreate("U456", ProfileHints{})
	require.NoError(t, err)
	require.Equal(t, "user_U456", u.Username)
	require.Equal(t, "UTC", u.Timezone)
}

func TestFindOrCreate_Idempotent(t *testing.T) {
	_, users, _ := newServices(t)

	first, err := users.FindOrCreate("U1", ProfileHints{Name: "alice"})
	require.NoError(t, err)

	// Hints on later calls are ignored; the same row comes back.
	second, err := users.FindOrCreate("U1", ProfileHints{Name: "different"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "alice", second.Username)
}

func TestFindOrCreate_EmptySlackID(t *testing.T) {
	_, users, _ := newServices(t)

	_, err := users.FindOrCreate("", ProfileHints{})
	require.Error(t, err)
	require.True(t, errs.IsValidation(err))
}

func TestGetBySlackID_NotFoundIsNotAnError(t *testing.T) {
	_, users, _ := newServices(t)

	u, found, err := users.GetBySlackID("UNKNOWN")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, u)

	_, err = users.FindOrCreate("U9", ProfileHints{Name: "bob"})
	require.NoError(t, err)

	u, found, err = users.GetBySlackID("U9")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "bob", u.Username)
}

func TestGetAllActive_OrderedAndFiltered(t *testing.T) {
	db, users, _ := newServices(t)

	_, err := users.FindOrCreate("U1", ProfileHints{Name: "zoe"})
	require.NoError(t, err)
	_, err = users.FindOrCreate("U2", ProfileHints{Name: "adam"})
	require.NoError(t, err)
	inactive, err := users.FindOrCreate("U3", ProfileHints{Name: "mid"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	all, err := users.GetAllActive()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "adam", all[0].Username)
	require.Equal(t, "zoe", all[1].Username)
}

func TestGetByID_NotFound(t *testing.T) {
	_, users, _ := newServices(t)

	_, err := users.GetByID(999)
	require.Error(t, err)
	require.True(t, errs.IsNotFound(err))
}
