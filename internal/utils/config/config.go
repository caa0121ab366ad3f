package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/drxlabs/drx-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Admin       AdminConfig
	Settlement  SettlementConfig
	// Cron spec for flushing terminal requests to the archive,
	// e.g. "@every 1m". Empty disables the job.
	ArchivePeriod string
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type AdminConfig struct {
	// Shared secret expected in the X-Admin-Secret header for
	// privileged request transitions.
	Secret string
}

type SettlementConfig struct {
	// Webhook called after a request is approved so the settlement
	// agent can pick it up. Empty disables notifications.
	WebhookURL string
	// Uptime monitor pinged periodically while the server runs.
	UptimeWebhookURL string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

// Enabled reports whether an archive database was configured at all.
func (c DBConnection) Enabled() bool {
	return c.Host != ""
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           os.Getenv("API_PORT"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Admin: AdminConfig{
			Secret: os.Getenv("ADMIN_SECRET"),
		},
		Settlement: SettlementConfig{
			WebhookURL:       os.Getenv("SETTLEMENT_WEBHOOK_URL"),
			UptimeWebhookURL: os.Getenv("UPTIME_WEBHOOK_URL"),
		},
		ArchivePeriod: os.Getenv("ARCHIVE_PERIOD"),
	}
}
