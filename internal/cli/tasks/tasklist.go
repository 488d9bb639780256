package tasks

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/streaks"
	"github.com/goaltrack/goaltrack/internal/utils"
)

type TaskListCmd struct {
	Today   bool `help:"Show only today's tasks with a completion summary."`
	ShowIDs bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Client().List()
	if err != nil {
		return err
	}

	if c.Today {
		return c.printToday(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, task := range tasks {
		c.printTask(task)
	}
	return nil
}

func (c *TaskListCmd) printToday(tasks []models.Task) error {
	today := utils.Today()
	completed := 0
	var todays []models.Task
	for _, task := range tasks {
		if task.Date != today {
			continue
		}
		todays = append(todays, task)
		if task.Status == constants.StatusCompleted {
			completed++
		}
	}

	if len(todays) == 0 {
		fmt.Println("No tasks scheduled for today")
		return nil
	}

	fmt.Printf("Today's goals (%d/%d done, %d%%):\n",
		completed, len(todays), streaks.CompletionPercent(completed, len(todays)))
	for _, task := range todays {
		c.printTask(task)
	}
	return nil
}

func (c *TaskListCmd) printTask(task models.Task) {
	mark := " "
	if task.Status == constants.StatusCompleted {
		mark = "x"
	}

	idStr := ""
	if c.ShowIDs {
		idStr = fmt.Sprintf(" (ID: %s)", task.ID)
	}

	fmt.Printf("  [%s] %s%s - %s %s (%s, due %s)\n",
		mark, task.Title, idStr, task.Date, task.Time, task.Priority, task.Deadline)
}
