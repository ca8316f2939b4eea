package handlers

import (
	"sync"
	"testing"

	"task-manager-bot/internal/config"
	"task-manager-bot/internal/notify"
	"task-manager-bot/internal/service"
	"task-manager-bot/internal/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// captureMessenger records outbound messages for assertions.
type captureMessenger struct {
	mu    sync.Mutex
	posts map[string][]notify.Message
}

func newCaptureMessenger() *captureMessenger {
	return &captureMessenger{posts: make(map[string][]notify.Message)}
}

func (m *captureMessenger) Post(channel string, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[channel] = append(m.posts[channel], msg)
	return nil
}

func newTestHandler(t *testing.T, cfg config.Config, messenger notify.Messenger) (*Handler, *gorm.DB) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	if messenger == nil {
		messenger = notify.NopMessenger{}
	}
	log := zap.NewNop()
	users := service.NewUserService(db, log)
	tasks := service.NewTaskService(db, log)
	return New(users, tasks, messenger, cfg, log), db
}
