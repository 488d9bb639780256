package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/cli/backups"
	"github.com/goaltrack/goaltrack/internal/cli/habits"
	"github.com/goaltrack/goaltrack/internal/cli/notifications"
	"github.com/goaltrack/goaltrack/internal/cli/study"
	synccmd "github.com/goaltrack/goaltrack/internal/cli/sync"
	"github.com/goaltrack/goaltrack/internal/cli/system"
	"github.com/goaltrack/goaltrack/internal/cli/tasks"
	"github.com/goaltrack/goaltrack/internal/cli/users"
	"github.com/goaltrack/goaltrack/internal/config"
	"github.com/goaltrack/goaltrack/internal/constants"
	apperrors "github.com/goaltrack/goaltrack/internal/errors"
	"github.com/goaltrack/goaltrack/internal/keyring"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/storage"
	"github.com/goaltrack/goaltrack/internal/storage/postgres"
	"github.com/goaltrack/goaltrack/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Config  string `help:"SQLite database path, PostgreSQL connection string, or 'keyring' to read the connection string from the OS keyring. PostgreSQL credentials must NOT be embedded in the connection string." default:"~/.config/goaltrack/goaltrack.db"`

	Init  system.InitCmd  `cmd:"" help:"Initialize goaltrack storage."`
	Serve system.ServeCmd `cmd:"" help:"Run the HTTP API server."`
	Task  struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		Toggle tasks.TaskToggleCmd `cmd:"" help:"Toggle a task between pending and completed."`
	} `cmd:"" help:"Manage tasks."`
	Habits   habits.HabitsCmd   `cmd:"" help:"Show habit streaks derived from your tasks."`
	Calendar habits.CalendarCmd `cmd:"" help:"Show the 30-day completion calendar."`
	Notify   struct {
		Send    notifications.SendCmd    `cmd:"" default:"1" help:"Run a notification sweep and send emails."`
		Log     notifications.LogCmd     `cmd:"" help:"Show the most recent sent notifications."`
		Streaks notifications.StreaksCmd `cmd:"" help:"Preview the streak scan without sending."`
	} `cmd:"" help:"Email notifications."`
	Study struct {
		Start   study.StudyCmd   `cmd:"" default:"1" help:"Launch the interactive study timer."`
		History study.HistoryCmd `cmd:"" help:"List recorded study sessions."`
	} `cmd:"" help:"Study timer."`
	Sync struct {
		List    synccmd.ListCmd    `cmd:"" help:"List tasks in the Notion database."`
		Pull    synccmd.PullCmd    `cmd:"" help:"Import Notion tasks into the local store."`
		Push    synccmd.PushCmd    `cmd:"" help:"Push a local task to Notion."`
		Archive synccmd.ArchiveCmd `cmd:"" help:"Archive a Notion page."`
	} `cmd:"" help:"Sync tasks with a Notion database."`
	User struct {
		Add  users.UserAddCmd  `cmd:"" help:"Add a user."`
		List users.UserListCmd `cmd:"" help:"List users."`
	} `cmd:"" help:"Manage users."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" default:"1" help:"Check keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" default:"1" help:"Create a manual backup."`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal goal and habit tracker with streaks, reminders, and Notion sync"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":      constants.Version,
			"default_port": constants.DefaultPort,
		},
	)

	// GOALTRACK_DB overrides the default path only; an explicit --config wins.
	if CLI.Config == constants.DefaultConfigPath {
		if db := os.Getenv("GOALTRACK_DB"); db != "" {
			CLI.Config = db
		}
	}

	target := expandHome(CLI.Config)

	if CLI.Config == "keyring" {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: no connection string in keyring: %v\n", err)
			os.Exit(1)
		}
		target = connStr
	}

	var store storage.Provider
	var configDir string
	if strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://") {
		if valid, err := postgres.ValidateConnString(target); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
				fmt.Fprintln(os.Stderr, "       Store the full connection string in the OS keyring and pass --config=keyring,")
				fmt.Fprintln(os.Stderr, "       or rely on environment variables / .pgpass for the password.")
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		store = postgres.New(target)
		configDir = expandHome(filepath.Dir(constants.DefaultConfigPath))
	} else {
		store = sqlite.NewStore(target)
		configDir = filepath.Dir(target)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()

	// Init handles its own loading and keyring commands never touch the
	// database; everything else needs the schema in place.
	command := ctx.Command()
	if ctx.Selected() != nil && ctx.Selected().Name != "init" && !strings.HasPrefix(command, "keyring") {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:  store,
		Config: &cfg,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
