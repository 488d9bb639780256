package tasks

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/utils"
)

type TaskEditCmd struct {
	ID          string `arg:"" help:"ID of the task to edit."`
	Title       string `help:"New title."`
	Description string `help:"New description."`
	Date        string `short:"d" help:"New scheduled date (YYYY-MM-DD)."`
	Time        string `short:"t" help:"New time of day."`
	Priority    string `short:"p" help:"New priority (low|medium|high)." enum:"low,medium,high,"`
	Status      string `short:"s" help:"New status (pending|completed|overdue)." enum:"pending,completed,overdue,"`
	Deadline    string `help:"New deadline (YYYY-MM-DD)."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	if c.Deadline != "" && !utils.ValidateDateFormat(c.Deadline) {
		return fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD)", c.Deadline)
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	var update models.TaskUpdate
	if c.Title != "" {
		update.Title = &c.Title
	}
	if c.Description != "" {
		update.Description = &c.Description
	}
	if c.Date != "" {
		update.Date = &c.Date
	}
	if c.Time != "" {
		update.Time = &c.Time
	}
	if c.Priority != "" {
		p := constants.Priority(c.Priority)
		update.Priority = &p
	}
	if c.Status != "" {
		s := constants.Status(c.Status)
		update.Status = &s
	}
	if c.Deadline != "" {
		update.Deadline = &c.Deadline
	}

	if _, err := ctx.Client().Update(c.ID, update); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Updated task: %s\n", c.ID)
	return nil
}
