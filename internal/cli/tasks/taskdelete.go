package tasks

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"ID of the task to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Client().Delete(c.ID)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Deleted task: %s (%d remaining)\n", c.ID, len(tasks))
	return nil
}
