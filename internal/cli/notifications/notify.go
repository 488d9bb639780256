package notifications

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/notify"
)

type SendCmd struct {
	Type string `arg:"" optional:"" help:"Trigger kind (check_overdue|check_streaks|manual)." default:"manual" enum:"check_overdue,check_streaks,manual"`
}

func (c *SendCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Notifier()
	if err != nil {
		return err
	}

	sent, err := svc.Run(c.Type)
	if err != nil {
		return err
	}

	fmt.Printf("Sent %d notifications\n", sent)
	return nil
}

type LogCmd struct{}

func (c *LogCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Client().RecentNotifications()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No notifications sent yet")
		return nil
	}

	fmt.Println("Recent notifications:")
	for _, rec := range records {
		extra := ""
		if rec.StreakCount > 0 {
			extra = fmt.Sprintf(" (%d-day streak)", rec.StreakCount)
		}
		fmt.Printf("  %s  %-18s  %s%s\n",
			rec.SentAt.Local().Format("2006-01-02 15:04"), rec.Type, rec.EmailSubject, extra)
	}
	return nil
}

// StreaksCmd previews the streak scan without sending anything.
type StreaksCmd struct{}

func (c *StreaksCmd) Run(ctx *cli.Context) error {
	svc := notify.NewService(ctx.Store, nil)
	userStreaks, err := svc.UserStreaks()
	if err != nil {
		return err
	}

	if len(userStreaks) == 0 {
		fmt.Println("No active streaks")
		return nil
	}

	for _, streak := range userStreaks {
		note := ""
		if streak.IsMilestone {
			note = "  ← milestone, would trigger an email"
		}
		fmt.Printf("  %s: %d days%s\n", streak.UserEmail, streak.CurrentStreak, note)
	}
	return nil
}
