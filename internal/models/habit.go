package models

// Habit is a derived grouping of tasks sharing an identical title. It is
// recomputed from the task list on every refresh and never persisted.
type Habit struct {
	ID         string `json:"id"`   // the shared title
	Name       string `json:"name"` // same as ID
	Target     int    `json:"target"`
	Completed  int    `json:"completed"`
	Streak     int    `json:"streak"`
	BestStreak int    `json:"best_streak"`
	Category   string `json:"category"` // capitalized priority of the group
}

// CalendarDay is one cell of the trailing completion calendar.
type CalendarDay struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
