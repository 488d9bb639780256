package study

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/tui"
	"github.com/goaltrack/goaltrack/internal/utils"
)

type StudyCmd struct {
	Record bool `help:"Persist finished sessions to the store."`
	All    bool `help:"Offer all tasks, not just today's pending ones."`
}

func (c *StudyCmd) Run(ctx *cli.Context) error {
	client := ctx.Client()
	tasks, err := client.List()
	if err != nil {
		return err
	}

	if !c.All {
		today := utils.Today()
		var filtered []models.Task
		for _, task := range tasks {
			if task.Date == today && task.Status != constants.StatusCompleted {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}

	model := tui.NewModel(client, tasks, c.Record)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("study timer failed: %w", err)
	}
	return nil
}

// HistoryCmd lists persisted study sessions.
type HistoryCmd struct{}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.GetStudySessionsForUser(ctx.Config.DefaultUserID)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No recorded study sessions")
		return nil
	}

	fmt.Println("Study sessions:")
	total := 0
	for _, session := range sessions {
		total += session.Duration
		fmt.Printf("  %s  %-28s  %s\n",
			session.StartTime.Local().Format("2006-01-02 15:04"),
			session.TaskTitle,
			utils.FormatDuration(session.Duration))
	}
	fmt.Printf("\nTotal: %s across %d sessions\n", utils.FormatDuration(total), len(sessions))
	return nil
}
