// Package streaks derives streak, habit and calendar views from a task list.
// Every function is pure: the task list and the reference day go in, derived
// values come out. Nothing here touches the store, so the views are always
// recomputable from the current task list.
package streaks

import (
	"math"
	"sort"
	"strings"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/utils"
)

// Current returns the running completion streak ending at today.
//
// Completed tasks are walked newest first. A task extends the streak while its
// whole-day distance from today does not exceed the running streak plus one,
// which allows a single grace day at the boundary. This is deliberately a
// lenient check rather than a strict consecutive-day test.
func Current(tasks []models.Task, today string) int {
	completed := completedByDate(tasks)
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date > completed[j].Date
	})

	ref, err := utils.ParseDate(today)
	if err != nil {
		return 0
	}

	streak := 0
	for _, t := range completed {
		d, err := utils.ParseDate(t.Date)
		if err != nil {
			continue
		}
		diffDays := utils.DiffDays(ref, d)
		if diffDays <= streak+1 {
			streak++
		} else {
			break
		}
	}
	return streak
}

// Best returns the longest run of completions on strictly consecutive days
// anywhere in the task history. Any gap other than exactly one day resets the
// running count to 1; the final run is included.
func Best(tasks []models.Task) int {
	completed := completedByDate(tasks)
	if len(completed) == 0 {
		return 0
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date < completed[j].Date
	})

	best := 0
	run := 0
	var prev string
	for _, t := range completed {
		if prev != "" {
			d, err := utils.ParseDate(t.Date)
			if err != nil {
				continue
			}
			p, err := utils.ParseDate(prev)
			if err != nil {
				continue
			}
			if utils.DiffDays(d, p) == 1 {
				run++
			} else {
				if run > best {
					best = run
				}
				run = 1
			}
		} else {
			run = 1
		}
		prev = t.Date
	}
	if run > best {
		best = run
	}
	return best
}

// BuildHabits groups tasks by exact title match and aggregates each group into
// a habit. Groups keep first-seen order so repeated refreshes render stably.
// The category is the capitalized priority of the group's first member; groups
// are assumed homogeneous in practice.
func BuildHabits(tasks []models.Task, today string) []models.Habit {
	order := make([]string, 0)
	groups := make(map[string][]models.Task)
	for _, t := range tasks {
		if _, ok := groups[t.Title]; !ok {
			order = append(order, t.Title)
		}
		groups[t.Title] = append(groups[t.Title], t)
	}

	habits := make([]models.Habit, 0, len(order))
	for _, title := range order {
		group := groups[title]
		completed := 0
		for _, t := range group {
			if t.Status == constants.StatusCompleted {
				completed++
			}
		}
		habits = append(habits, models.Habit{
			ID:         title,
			Name:       title,
			Target:     len(group),
			Completed:  completed,
			Streak:     Current(group, today),
			BestStreak: Best(group),
			Category:   capitalize(string(group[0].Priority)),
		})
	}
	return habits
}

// BuildCalendar returns one cell per day of the trailing window, oldest first,
// today inclusive. A day with no tasks has percentage 0, never a division error.
func BuildCalendar(tasks []models.Task, today string, windowDays int) []models.CalendarDay {
	ref, err := utils.ParseDate(today)
	if err != nil {
		return nil
	}

	days := make([]models.CalendarDay, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := ref.AddDate(0, 0, -i).Format(constants.DateFormat)
		total := 0
		completed := 0
		for _, t := range tasks {
			if t.Date != date {
				continue
			}
			total++
			if t.Status == constants.StatusCompleted {
				completed++
			}
		}
		pct := 0.0
		if total > 0 {
			pct = float64(completed) / float64(total) * 100
		}
		days = append(days, models.CalendarDay{
			Date:       date,
			Completed:  completed,
			Total:      total,
			Percentage: pct,
		})
	}
	return days
}

// CalendarCurrent counts trailing days at or above the streak threshold,
// walking backward from the most recent cell and stopping at the first miss.
func CalendarCurrent(days []models.CalendarDay) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Percentage >= constants.StreakDayThreshold {
			streak++
		} else {
			break
		}
	}
	return streak
}

// CalendarBest returns the longest threshold run anywhere in the window.
func CalendarBest(days []models.CalendarDay) int {
	best := 0
	run := 0
	for _, d := range days {
		if d.Percentage >= constants.StreakDayThreshold {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// AvgCalendarCompletion returns the window's mean completion percentage,
// rounded to the nearest integer.
func AvgCalendarCompletion(days []models.CalendarDay) int {
	if len(days) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range days {
		sum += d.Percentage
	}
	return int(math.Round(sum / float64(len(days))))
}

// TotalCompleted sums completed tasks across the window.
func TotalCompleted(days []models.CalendarDay) int {
	total := 0
	for _, d := range days {
		total += d.Completed
	}
	return total
}

// PerfectDays counts window days with 100% completion.
func PerfectDays(days []models.CalendarDay) int {
	n := 0
	for _, d := range days {
		if d.Percentage == 100 {
			n++
		}
	}
	return n
}

// AvgHabitCompletion returns the mean completion ratio across habits as a
// rounded percentage. Habits with target 0 contribute 0.
func AvgHabitCompletion(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	sum := 0.0
	for _, h := range habits {
		if h.Target > 0 {
			sum += float64(h.Completed) / float64(h.Target) * 100
		}
	}
	return int(math.Round(sum / float64(len(habits))))
}

// BestHabitStreak returns the largest best-streak across habits.
func BestHabitStreak(habits []models.Habit) int {
	best := 0
	for _, h := range habits {
		if h.BestStreak > best {
			best = h.BestStreak
		}
	}
	return best
}

// ActiveStreaks counts habits with a non-zero current streak.
func ActiveStreaks(habits []models.Habit) int {
	n := 0
	for _, h := range habits {
		if h.Streak > 0 {
			n++
		}
	}
	return n
}

// CompletionPercent is the rounded completed/total percentage, 0 when total is 0.
func CompletionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func completedByDate(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == constants.StatusCompleted {
			out = append(out, t)
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
