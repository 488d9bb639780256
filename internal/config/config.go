package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/logger"
)

// Config carries everything read from the environment at startup. Secrets for
// the external APIs live here; the postgres connection string stays in the OS
// keyring instead.
type Config struct {
	ResendAPIKey     string
	NotionToken      string
	NotionDatabaseID string
	DefaultUserID    string
	Port             string
}

// Load reads an optional .env file and then the process environment. A missing
// .env is not an error; explicit environment variables always win anyway
// because godotenv never overrides them.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", "error", err)
	}

	cfg := Config{
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		DefaultUserID:    os.Getenv("GOALTRACK_USER"),
		Port:             os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = constants.DefaultPort
	}
	return cfg
}
