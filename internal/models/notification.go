package models

import (
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
)

// NotificationRecord is one row of the append-only notification audit log.
// Rows are written only by the notification trigger, never by clients.
type NotificationRecord struct {
	ID           string                     `json:"id"`
	UserID       string                     `json:"user_id"`
	Type         constants.NotificationType `json:"type"`
	TaskID       string                     `json:"task_id,omitempty"`
	StreakCount  int                        `json:"streak_count,omitempty"`
	EmailSubject string                     `json:"email_subject"`
	EmailBody    string                     `json:"email_body"`
	SentAt       time.Time                  `json:"sent_at"`
}

// OverdueTask is one row of the cross-user overdue scan.
type OverdueTask struct {
	TaskID      string `json:"task_id"`
	TaskTitle   string `json:"task_title"`
	Deadline    string `json:"deadline"` // YYYY-MM-DD
	DaysOverdue int    `json:"days_overdue"`
	UserID      string `json:"user_id"`
	UserEmail   string `json:"user_email"`
}

// UserStreak is one row of the cross-user streak scan.
type UserStreak struct {
	UserID        string `json:"user_id"`
	UserEmail     string `json:"user_email"`
	CurrentStreak int    `json:"current_streak"`
	IsMilestone   bool   `json:"is_milestone"`
}
