package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack/goaltrack/internal/constants"
	apperrors "github.com/goaltrack/goaltrack/internal/errors"
	"github.com/goaltrack/goaltrack/internal/models"
)

// Client is the task-store client used by the CLI and the API handlers. It
// scopes every call to one user and re-fetches the full list after each
// mutation so derived views never drift from the source of truth. Failures
// come back as StoreError (or ErrAuthRequired for a missing user) and leave
// stored state untouched.
type Client struct {
	store  Provider
	userID string
}

// NewClient returns a client bound to the given user. userID may be empty;
// every call then fails with ErrAuthRequired.
func NewClient(store Provider, userID string) *Client {
	return &Client{store: store, userID: userID}
}

// UserID returns the bound user id.
func (c *Client) UserID() string { return c.userID }

func (c *Client) authed() error {
	if c.userID == "" {
		return apperrors.ErrAuthRequired
	}
	return nil
}

// List returns the user's tasks ordered by date ascending.
func (c *Client) List() ([]models.Task, error) {
	if err := c.authed(); err != nil {
		return nil, err
	}
	tasks, err := c.store.GetTasksForUser(c.userID)
	if err != nil {
		return nil, apperrors.Store("list tasks", err)
	}
	return tasks, nil
}

// Create validates and inserts a task, then returns the refreshed list.
func (c *Client) Create(task models.Task) ([]models.Task, error) {
	if err := c.authed(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	task.ID = uuid.New().String()
	task.UserID = c.userID
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == "" {
		task.Status = constants.StatusPending
	}
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	if err := c.store.AddTask(task); err != nil {
		return nil, apperrors.Store("create task", err)
	}
	return c.List()
}

// Update applies a partial update to the task, then returns the refreshed list.
func (c *Client) Update(id string, update models.TaskUpdate) ([]models.Task, error) {
	if err := c.authed(); err != nil {
		return nil, err
	}
	task, err := c.store.GetTask(c.userID, id)
	if err != nil {
		return nil, apperrors.Store("get task", err)
	}
	update.Apply(&task)
	task.UpdatedAt = time.Now().UTC()
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	if err := c.store.UpdateTask(task); err != nil {
		return nil, apperrors.Store("update task", err)
	}
	return c.List()
}

// Delete removes the task, then returns the refreshed list.
func (c *Client) Delete(id string) ([]models.Task, error) {
	if err := c.authed(); err != nil {
		return nil, err
	}
	if err := c.store.DeleteTask(c.userID, id); err != nil {
		return nil, apperrors.Store("delete task", err)
	}
	return c.List()
}

// ToggleStatus flips completed<->pending. An overdue task becomes completed on
// the first toggle; a toggle never produces the overdue status itself. All
// other fields are left untouched.
func (c *Client) ToggleStatus(id string) ([]models.Task, error) {
	if err := c.authed(); err != nil {
		return nil, err
	}
	task, err := c.store.GetTask(c.userID, id)
	if err != nil {
		return nil, apperrors.Store("get task", err)
	}
	if task.Status == constants.StatusCompleted {
		task.Status = constants.StatusPending
	} else {
		task.Status = constants.StatusCompleted
	}
	task.UpdatedAt = time.Now().UTC()
	if err := c.store.UpdateTask(task); err != nil {
		return nil, apperrors.Store("toggle task status", err)
	}
	return c.List()
}

// RecordStudySession persists a finished study session for the user.
func (c *Client) RecordStudySession(session models.StudySession) error {
	if err := c.authed(); err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.UserID = c.userID
	if err := c.store.AddStudySession(session); err != nil {
		return apperrors.Store("record study session", err)
	}
	return nil
}

// RecentNotifications reads the user's notification audit log, newest first.
func (c *Client) RecentNotifications() ([]models.NotificationRecord, error) {
	if err := c.authed(); err != nil {
		return nil, err
	}
	records, err := c.store.GetRecentNotifications(c.userID, constants.NotificationLogLimit)
	if err != nil {
		return nil, apperrors.Store("list notifications", err)
	}
	return records, nil
}
