// Package schedule implements the periodic reminder: a coarse polling loop
// that fires a notification inside configured day/time windows.
package schedule

import (
	"context"
	"time"

	"task-manager-bot/internal/notify"

	"go.uber.org/zap"
)

// Config describes the reminder windows: the given weekdays at Hour o'clock,
// for WindowMinutes past the hour.
type Config struct {
	Days          []time.Weekday
	Hour          int
	WindowMinutes int

	// Recipient is the platform channel or user id the reminder goes to.
	Recipient string

	// Interval is how often the loop wakes up.
	Interval time.Duration
}

// DefaultConfig is the supply-check schedule: Tuesday and Thursday at
// 08:00, checked every five minutes.
func DefaultConfig(recipient string) Config {
	return Config{
		Days:          []time.Weekday{time.Tuesday, time.Thursday},
		Hour:          8,
		WindowMinutes: 5,
		Recipient:     recipient,
		Interval:      5 * time.Minute,
	}
}

// IsScheduledWindow reports whether now falls inside one of the configured
// reminder windows.
func IsScheduledWindow(now time.Time, cfg Config) bool {
	if now.Hour() != cfg.Hour || now.Minute() >= cfg.WindowMinutes {
		return false
	}
	for _, d := range cfg.Days {
		if now.Weekday() == d {
			return true
		}
	}
	return false
}

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

// Reminder drives the polling loop. It holds no mutable state shared with
// request handling; failures are logged and the loop continues.
type Reminder struct {
	cfg       Config
	clock     Clock
	messenger notify.Messenger
	log       *zap.Logger
}

func NewReminder(cfg Config, clock Clock, messenger notify.Messenger, log *zap.Logger) *Reminder {
	if clock == nil {
		clock = time.Now
	}
	return &Reminder{cfg: cfg, clock: clock, messenger: messenger, log: log}
}

// Run polls until ctx is cancelled, sending at most one reminder per
// matching wake-up.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("reminder loop stopped")
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

// tick performs one wake-up: check the window, send if it matches.
func (r *Reminder) tick() {
	now := r.clock()
	if !IsScheduledWindow(now, r.cfg) {
		return
	}

	dayName := now.Weekday().String()
	if err := r.messenger.Post(r.cfg.Recipient, notify.Reminder(dayName)); err != nil {
		r.log.Error("failed to send scheduled reminder",
			zap.String("recipient", r.cfg.Recipient),
			zap.Error(err))
		return
	}
	r.log.Info("scheduled reminder sent",
		zap.String("recipient", r.cfg.Recipient),
		zap.String("day", dayName))
}
