package sync

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/notion"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	nc, err := ctx.Notion()
	if err != nil {
		return err
	}

	tasks, err := nc.ListTasks()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks in the Notion database")
		return nil
	}

	fmt.Println("Notion tasks:")
	for _, task := range tasks {
		fmt.Printf("  %s - %s %s (%s, %s, due %s)\n",
			task.Title, task.Date, task.Time, task.Priority, task.Status, task.Deadline)
	}
	return nil
}

type PullCmd struct {
	DryRun bool `help:"Show what would be imported without writing anything."`
}

func (c *PullCmd) Run(ctx *cli.Context) error {
	nc, err := ctx.Notion()
	if err != nil {
		return err
	}

	notionTasks, err := nc.ListTasks()
	if err != nil {
		return err
	}

	client := ctx.Client()
	existing, err := client.List()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, task := range existing {
		seen[task.Title+"|"+task.Date] = true
	}

	imported := 0
	for _, nt := range notionTasks {
		if seen[nt.Title+"|"+nt.Date] {
			continue
		}
		if c.DryRun {
			fmt.Printf("  would import: %s (%s)\n", nt.Title, nt.Date)
			imported++
			continue
		}

		task := models.Task{
			Title:       nt.Title,
			Description: nt.Description,
			Date:        nt.Date,
			Time:        nt.Time,
			Priority:    constants.Priority(nt.Priority),
			Status:      constants.Status(nt.Status),
			Deadline:    nt.Deadline,
		}
		if _, err := client.Create(task); err != nil {
			return fmt.Errorf("importing %q: %w", nt.Title, err)
		}
		imported++
	}

	if c.DryRun {
		fmt.Printf("%d tasks would be imported\n", imported)
	} else {
		fmt.Printf("Imported %d tasks from Notion\n", imported)
		if imported > 0 {
			ctx.PerformAutomaticBackup()
		}
	}
	return nil
}

type PushCmd struct {
	ID string `arg:"" help:"ID of the local task to push to Notion."`
}

func (c *PushCmd) Run(ctx *cli.Context) error {
	nc, err := ctx.Notion()
	if err != nil {
		return err
	}

	tasks, err := ctx.Client().List()
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.ID != c.ID {
			continue
		}
		err := nc.CreateTask(notion.Task{
			Title:       task.Title,
			Description: task.Description,
			Date:        task.Date,
			Time:        task.Time,
			Priority:    string(task.Priority),
			Status:      string(task.Status),
			Deadline:    task.Deadline,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Pushed task to Notion: %s\n", task.Title)
		return nil
	}

	return fmt.Errorf("task with id %s not found", c.ID)
}

type ArchiveCmd struct {
	PageID string `arg:"" help:"Notion page ID to archive."`
}

func (c *ArchiveCmd) Run(ctx *cli.Context) error {
	nc, err := ctx.Notion()
	if err != nil {
		return err
	}
	if err := nc.ArchiveTask(c.PageID); err != nil {
		return err
	}
	fmt.Printf("Archived Notion page: %s\n", c.PageID)
	return nil
}
