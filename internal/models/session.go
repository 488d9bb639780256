package models

import "time"

// StudySession is one run of the study timer against a task. Sessions live in
// the timer's in-memory history; recording them through the store is optional.
type StudySession struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	TaskID    string     `json:"task_id"`
	TaskTitle string     `json:"task_title"` // snapshot, survives task renames
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Duration  int        `json:"duration"` // seconds
	IsActive  bool       `json:"is_active"`
}
