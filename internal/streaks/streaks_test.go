package streaks

import (
	"testing"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

const today = "2026-03-15"

func task(title, date string, status constants.Status, priority constants.Priority) models.Task {
	return models.Task{
		ID:       title + "/" + date,
		UserID:   "u1",
		Title:    title,
		Date:     date,
		Priority: priority,
		Status:   status,
		Deadline: date,
	}
}

func completedOn(dates ...string) []models.Task {
	tasks := make([]models.Task, 0, len(dates))
	for _, d := range dates {
		tasks = append(tasks, task("Read", d, constants.StatusCompleted, constants.PriorityMedium))
	}
	return tasks
}

func TestCurrentNoCompletedTasks(t *testing.T) {
	tasks := []models.Task{
		task("Read", today, constants.StatusPending, constants.PriorityLow),
		task("Run", today, constants.StatusOverdue, constants.PriorityHigh),
	}
	if got := Current(tasks, today); got != 0 {
		t.Errorf("Current() = %d, want 0", got)
	}
	if got := Best(tasks); got != 0 {
		t.Errorf("Best() = %d, want 0", got)
	}
}

func TestCurrentTodayAndYesterday(t *testing.T) {
	tasks := completedOn("2026-03-15", "2026-03-14")
	if got := Current(tasks, today); got < 2 {
		t.Errorf("Current() = %d, want >= 2", got)
	}
}

func TestCurrentSingleOldCompletion(t *testing.T) {
	// 10 days back violates diffDays <= streak+1 on the first check.
	tasks := completedOn("2026-03-05")
	if got := Current(tasks, today); got != 0 {
		t.Errorf("Current() = %d, want 0", got)
	}
}

func TestCurrentGraceDay(t *testing.T) {
	// Yesterday only: diff 1 <= 0+1 extends once, then nothing left.
	tasks := completedOn("2026-03-14")
	if got := Current(tasks, today); got != 1 {
		t.Errorf("Current() = %d, want 1", got)
	}
}

func TestCurrentStopsAtFirstViolation(t *testing.T) {
	// Today counts (streak 1), then a 5-day-old task breaks the walk even
	// though an older chain exists behind it.
	tasks := completedOn("2026-03-15", "2026-03-10", "2026-03-09")
	if got := Current(tasks, today); got != 1 {
		t.Errorf("Current() = %d, want 1", got)
	}
}

func TestBestConsecutiveRun(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "three consecutive days",
			dates: []string{"2026-03-10", "2026-03-11", "2026-03-12"},
			want:  3,
		},
		{
			name:  "gap resets the running count",
			dates: []string{"2026-03-01", "2026-03-02", "2026-03-05", "2026-03-06", "2026-03-07"},
			want:  3,
		},
		{
			name:  "single completion",
			dates: []string{"2026-03-01"},
			want:  1,
		},
		{
			name:  "final run counts",
			dates: []string{"2026-03-01", "2026-03-05", "2026-03-06"},
			want:  2,
		},
		{
			name:  "unsorted input",
			dates: []string{"2026-03-12", "2026-03-10", "2026-03-11"},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Best(completedOn(tt.dates...)); got != tt.want {
				t.Errorf("Best() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildHabitsAggregation(t *testing.T) {
	tasks := []models.Task{
		task("Read", "2026-03-14", constants.StatusCompleted, constants.PriorityHigh),
		task("Read", "2026-03-15", constants.StatusPending, constants.PriorityHigh),
		task("Run", "2026-03-15", constants.StatusCompleted, constants.PriorityLow),
	}

	habits := BuildHabits(tasks, today)
	if len(habits) != 2 {
		t.Fatalf("BuildHabits() returned %d habits, want 2", len(habits))
	}

	read := habits[0]
	if read.Name != "Read" {
		t.Fatalf("first habit = %q, want Read (first-seen order)", read.Name)
	}
	if read.Target != 2 || read.Completed != 1 {
		t.Errorf("Read habit target/completed = %d/%d, want 2/1", read.Target, read.Completed)
	}
	if got := CompletionPercent(read.Completed, read.Target); got != 50 {
		t.Errorf("Read completion = %d%%, want 50%%", got)
	}
	if read.Category != "High" {
		t.Errorf("Read category = %q, want High", read.Category)
	}

	run := habits[1]
	if run.Target != 1 || run.Completed != 1 || run.Category != "Low" {
		t.Errorf("Run habit = %+v, want target=1 completed=1 category=Low", run)
	}
}

func TestBuildHabitsTitleMatchIsCaseSensitive(t *testing.T) {
	tasks := []models.Task{
		task("read", "2026-03-14", constants.StatusCompleted, constants.PriorityLow),
		task("Read", "2026-03-15", constants.StatusCompleted, constants.PriorityLow),
	}
	if habits := BuildHabits(tasks, today); len(habits) != 2 {
		t.Errorf("BuildHabits() merged distinct titles, got %d habits, want 2", len(habits))
	}
}

func TestBuildCalendarWindow(t *testing.T) {
	tasks := []models.Task{
		task("Read", "2026-03-15", constants.StatusCompleted, constants.PriorityLow),
		task("Run", "2026-03-15", constants.StatusPending, constants.PriorityLow),
		task("Read", "2026-03-14", constants.StatusCompleted, constants.PriorityLow),
	}

	days := BuildCalendar(tasks, today, constants.CalendarWindowDays)
	if len(days) != 30 {
		t.Fatalf("BuildCalendar() returned %d days, want 30", len(days))
	}
	if days[0].Date != "2026-02-14" {
		t.Errorf("first day = %s, want 2026-02-14", days[0].Date)
	}
	last := days[len(days)-1]
	if last.Date != today {
		t.Errorf("last day = %s, want %s", last.Date, today)
	}
	if last.Total != 2 || last.Completed != 1 || last.Percentage != 50 {
		t.Errorf("today cell = %+v, want 1/2 (50%%)", last)
	}
}

func TestBuildCalendarEmptyDayIsZero(t *testing.T) {
	days := BuildCalendar(nil, today, constants.CalendarWindowDays)
	for _, d := range days {
		if d.Percentage != 0 {
			t.Fatalf("day %s has percentage %v, want 0", d.Date, d.Percentage)
		}
	}
	if got := AvgCalendarCompletion(days); got != 0 {
		t.Errorf("AvgCalendarCompletion() = %d, want 0", got)
	}
}

func TestCalendarStreaks(t *testing.T) {
	days := []models.CalendarDay{
		{Percentage: 100},
		{Percentage: 80},
		{Percentage: 50},
		{Percentage: 90},
		{Percentage: 85},
	}
	if got := CalendarCurrent(days); got != 2 {
		t.Errorf("CalendarCurrent() = %d, want 2", got)
	}
	if got := CalendarBest(days); got != 2 {
		t.Errorf("CalendarBest() = %d, want 2", got)
	}

	// The 79% day is below the threshold by design.
	below := []models.CalendarDay{{Percentage: 79.9}}
	if got := CalendarCurrent(below); got != 0 {
		t.Errorf("CalendarCurrent() below threshold = %d, want 0", got)
	}
}

func TestOverviewStats(t *testing.T) {
	habits := []models.Habit{
		{Target: 2, Completed: 1, Streak: 1, BestStreak: 4},
		{Target: 4, Completed: 4, Streak: 0, BestStreak: 2},
	}
	if got := AvgHabitCompletion(habits); got != 75 {
		t.Errorf("AvgHabitCompletion() = %d, want 75", got)
	}
	if got := BestHabitStreak(habits); got != 4 {
		t.Errorf("BestHabitStreak() = %d, want 4", got)
	}
	if got := ActiveStreaks(habits); got != 1 {
		t.Errorf("ActiveStreaks() = %d, want 1", got)
	}

	days := []models.CalendarDay{
		{Completed: 2, Percentage: 100},
		{Completed: 1, Percentage: 50},
		{Completed: 0, Percentage: 0},
	}
	if got := TotalCompleted(days); got != 3 {
		t.Errorf("TotalCompleted() = %d, want 3", got)
	}
	if got := PerfectDays(days); got != 1 {
		t.Errorf("PerfectDays() = %d, want 1", got)
	}
}

func TestCompletionPercentZeroTotal(t *testing.T) {
	if got := CompletionPercent(0, 0); got != 0 {
		t.Errorf("CompletionPercent(0, 0) = %d, want 0", got)
	}
}
