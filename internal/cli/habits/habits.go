package habits

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/cli"
	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/streaks"
	"github.com/goaltrack/goaltrack/internal/utils"
)

type HabitsCmd struct{}

func (c *HabitsCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Client().List()
	if err != nil {
		return err
	}

	habits := streaks.BuildHabits(tasks, utils.Today())
	if len(habits) == 0 {
		fmt.Println("No habits yet. Habits are derived from your recurring task titles.")
		return nil
	}

	fmt.Println("Habits:")
	for _, habit := range habits {
		pct := streaks.CompletionPercent(habit.Completed, habit.Target)
		fmt.Printf("  %s (%s): %d/%d done (%d%%), streak %d, best %d\n",
			habit.Name, habit.Category, habit.Completed, habit.Target, pct,
			habit.Streak, habit.BestStreak)
	}

	fmt.Printf("\nActive streaks: %d   Avg completion: %d%%   Best streak: %d days\n",
		streaks.ActiveStreaks(habits),
		streaks.AvgHabitCompletion(habits),
		streaks.BestHabitStreak(habits))
	return nil
}

type CalendarCmd struct{}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Client().List()
	if err != nil {
		return err
	}

	days := streaks.BuildCalendar(tasks, utils.Today(), constants.CalendarWindowDays)

	fmt.Printf("Last %d days:\n", constants.CalendarWindowDays)
	for _, day := range days {
		marker := " "
		switch {
		case day.Total == 0:
			marker = "·"
		case day.Percentage >= constants.StreakDayThreshold:
			marker = "✓"
		default:
			marker = "✗"
		}
		fmt.Printf("  %s %s %d/%d (%.0f%%)\n", marker, day.Date, day.Completed, day.Total, day.Percentage)
	}

	fmt.Printf("\nCurrent streak: %d days   Best: %d days   Avg: %d%%   Completed: %d   Perfect days: %d\n",
		streaks.CalendarCurrent(days),
		streaks.CalendarBest(days),
		streaks.AvgCalendarCompletion(days),
		streaks.TotalCompleted(days),
		streaks.PerfectDays(days))
	return nil
}
