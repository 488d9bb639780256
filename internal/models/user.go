package models

import "time"

// User is the owner of tasks, sessions and notifications. Authentication is
// delegated to an external provider; only the id/email pair is kept locally so
// the notification scans know where to send mail.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
