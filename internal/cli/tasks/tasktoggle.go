package tasks

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type TaskToggleCmd struct {
	ID string `arg:"" help:"ID of the task to toggle between pending and completed."`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Client().ToggleStatus(c.ID)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.ID == c.ID {
			fmt.Printf("Task %q is now %s\n", task.Title, task.Status)
			break
		}
	}
	return nil
}
