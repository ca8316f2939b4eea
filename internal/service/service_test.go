package service

import (
	"testing"

	"task-manager-bot/internal/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServices(t *testing.T) (*gorm.DB, *UserService, *TaskService) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	log := zap.NewNop()
	return db, NewUserService(db, log), NewTaskService(db, log)
}
