package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-manager-bot/internal/config"
	"task-manager-bot/internal/database"
	"task-manager-bot/internal/handlers"
	"task-manager-bot/internal/notify"
	"task-manager-bot/internal/routes"
	"task-manager-bot/internal/schedule"
	"task-manager-bot/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	// Init database; a startup connectivity failure is fatal
	if err := database.InitDB(cfg.DatabasePath, log); err != nil {
		log.Fatal("failed to init database", zap.Error(err))
	}
	defer database.Close()

	var messenger notify.Messenger = notify.NopMessenger{}
	if cfg.WebhookURL != "" {
		messenger = notify.NewWebhookMessenger(cfg.WebhookURL, log)
	} else {
		log.Warn("WEBHOOK_URL not set; outbound messages are discarded")
	}

	db := database.GetDB()
	users := service.NewUserService(db, log)
	tasks := service.NewTaskService(db, log)

	h := handlers.New(users, tasks, messenger, cfg, log)
	ginRoutes := routes.SetupRoutes(h)

	// Background reminder loop, stopped on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reminder := schedule.NewReminder(schedule.DefaultConfig(cfg.ReminderRecipient), nil, messenger, log)
	go reminder.Run(ctx)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: ginRoutes,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Block until a shutdown signal, then drain
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
}
