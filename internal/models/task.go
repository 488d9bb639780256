package models

import (
	"fmt"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
)

// Task is a single dated goal owned by exactly one user.
type Task struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Date        string             `json:"date"`     // YYYY-MM-DD, the day the task is scheduled
	Time        string             `json:"time"`     // free-form time of day, e.g. "8:00 pm"
	Priority    constants.Priority `json:"priority"` // low | medium | high
	Status      constants.Status   `json:"status"`   // pending | completed | overdue
	Deadline    string             `json:"deadline"` // YYYY-MM-DD
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TaskUpdate carries a partial set of task fields. Nil means "leave unchanged".
type TaskUpdate struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Date        *string             `json:"date,omitempty"`
	Time        *string             `json:"time,omitempty"`
	Priority    *constants.Priority `json:"priority,omitempty"`
	Status      *constants.Status   `json:"status,omitempty"`
	Deadline    *string             `json:"deadline,omitempty"`
}

// Apply merges the non-nil fields of u into t.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Time != nil {
		t.Time = *u.Time
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Deadline != nil {
		t.Deadline = *u.Deadline
	}
}

func (t Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("task must belong to a user")
	}
	if _, err := time.Parse(constants.DateFormat, t.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", t.Date, err)
	}
	if _, err := time.Parse(constants.DateFormat, t.Deadline); err != nil {
		return fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD): %w", t.Deadline, err)
	}
	switch t.Priority {
	case constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
	default:
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	switch t.Status {
	case constants.StatusPending, constants.StatusCompleted, constants.StatusOverdue:
	default:
		return fmt.Errorf("invalid status %q", t.Status)
	}
	return nil
}
