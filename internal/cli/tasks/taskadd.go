package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/utils"
)

type TaskAddCmd struct {
	Title       string `arg:"" optional:"" help:"Task title. Omit to fill in the interactive form."`
	Description string `help:"Task description."`
	Date        string `short:"d" help:"Scheduled date (YYYY-MM-DD). Defaults to today."`
	Time        string `short:"t" help:"Time of day, free form (e.g. '8:00 pm')." default:"8:00 pm"`
	Priority    string `short:"p" help:"Priority (low|medium|high)." default:"medium" enum:"low,medium,high"`
	Deadline    string `help:"Deadline (YYYY-MM-DD). Defaults to the scheduled date."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if c.Title == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	if c.Date == "" {
		c.Date = utils.Today()
	}
	if c.Deadline == "" {
		c.Deadline = c.Date
	}

	task := models.Task{
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
		Time:        c.Time,
		Priority:    constants.Priority(c.Priority),
		Deadline:    c.Deadline,
	}

	tasks, err := ctx.Client().Create(task)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Added task: %s (%d total)\n", c.Title, len(tasks))
	return nil
}

func (c *TaskAddCmd) promptForm() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&c.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&c.Description),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&c.Date).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Value(&c.Time),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&c.Priority),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Description("Leave empty to match the date").
				Value(&c.Deadline).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())

	return form.Run()
}
