package storage

import "github.com/goaltrack/goaltrack/internal/models"

// Provider is the persistence contract shared by the sqlite and postgres
// backends. Every task, session and notification row is scoped to one user.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	AddUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	GetAllUsers() ([]models.User, error)

	// Tasks
	AddTask(models.Task) error
	// GetTask returns the task only when it belongs to userID.
	GetTask(userID, id string) (models.Task, error)
	// GetTasksForUser returns the user's tasks ordered by date ascending.
	GetTasksForUser(userID string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(userID, id string) error

	// Notifications (append-only audit log)
	AddNotification(models.NotificationRecord) error
	// GetRecentNotifications returns at most limit rows, newest first.
	GetRecentNotifications(userID string, limit int) ([]models.NotificationRecord, error)

	// Study sessions
	AddStudySession(models.StudySession) error
	GetStudySessionsForUser(userID string) ([]models.StudySession, error)

	// OverdueTasks returns, across all users, every non-completed task whose
	// deadline is strictly before today, joined with the owner's email.
	OverdueTasks(today string) ([]models.OverdueTask, error)

	// Utils
	GetConfigPath() string
}
