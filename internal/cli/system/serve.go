package system

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/api"
	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/logger"
)

type ServeCmd struct {
	Port string `short:"p" help:"Port to listen on." default:"${default_port}"`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	// Optional integrations come up only when their credentials are set; the
	// server answers 503 on their endpoints otherwise.
	var notifier api.Notifier
	if svc, err := ctx.Notifier(); err == nil {
		notifier = svc
	} else {
		logger.Warn("Notification endpoint disabled", "reason", err)
	}

	var notionClient api.NotionClient
	if nc, err := ctx.Notion(); err == nil {
		notionClient = nc
	} else {
		logger.Warn("Notion sync endpoints disabled", "reason", err)
	}

	server := api.NewServer(ctx.Store, notifier, notionClient)

	addr := fmt.Sprintf(":%s", c.Port)
	logger.Info("Starting API server", "addr", addr)
	return server.Run(addr)
}
