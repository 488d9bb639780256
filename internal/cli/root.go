package cli

import (
	"fmt"
	"os"

	"github.com/goaltrack/goaltrack/internal/backup"
	"github.com/goaltrack/goaltrack/internal/config"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/mailer"
	"github.com/goaltrack/goaltrack/internal/notify"
	"github.com/goaltrack/goaltrack/internal/notion"
	"github.com/goaltrack/goaltrack/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
}

// Client returns a task-store client bound to the configured default user.
func (c *Context) Client() *storage.Client {
	return storage.NewClient(c.Store, c.Config.DefaultUserID)
}

// Notifier builds the notification service. Missing email credentials are an
// unrecoverable setup error.
func (c *Context) Notifier() (*notify.Service, error) {
	if c.Config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}
	m := mailer.NewResendClient(c.Config.ResendAPIKey, constants.EmailFrom)
	return notify.NewService(c.Store, m), nil
}

// Notion builds the Notion sync client from configured credentials.
func (c *Context) Notion() (*notion.Client, error) {
	return notion.NewClient(c.Config.NotionToken, c.Config.NotionDatabaseID)
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. It is a no-op for non-file stores.
func (c *Context) PerformAutomaticBackup() {
	dbPath := c.Store.GetConfigPath()
	if _, err := os.Stat(dbPath); err != nil {
		return
	}
	if _, err := backup.NewManager(dbPath).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
