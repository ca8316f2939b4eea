package config

import "os"

// Config aggregates the environment-driven settings.
type Config struct {
	// Port the HTTP server listens on, including the colon.
	Port string

	// DatabasePath is the SQLite file path.
	DatabasePath string

	// WebhookURL is where outbound messages are posted. Empty disables
	// delivery (messages are built but discarded).
	WebhookURL string

	// ReminderRecipient is the platform user/channel id that receives the
	// scheduled supply-check reminder.
	ReminderRecipient string

	// AdminUsername / AdminPasswordHash guard the dashboard login.
	// The hash is a bcrypt digest; empty disables the login endpoint.
	AdminUsername     string
	AdminPasswordHash string
}

// Load reads the configuration from the environment with sane fallbacks.
func Load() Config {
	return Config{
		Port:              ":" + getEnv("PORT", "3000"),
		DatabasePath:      getEnv("DATABASE_PATH", "taskmanager.db"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		ReminderRecipient: getEnv("REMINDER_RECIPIENT", "U07F58GG752"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
