package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var t models.Task
	var priority, status, createdAt, updatedAt string

	err := scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Date, &t.Time,
		&priority, &status, &t.Deadline, &createdAt, &updatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.Priority = constants.Priority(priority)
	t.Status = constants.Status(status)

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, user_id, title, description, date, time, priority, status, deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.UserID, task.Title, task.Description, task.Date, task.Time,
		string(task.Priority), string(task.Status), task.Deadline,
		task.CreatedAt.UTC().Format(time.RFC3339), task.UpdatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetTask(userID, id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, title, description, date, time, priority, status, deadline, created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`, id, userID)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, fmt.Errorf("task with id %s not found", id)
		}
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) GetTasksForUser(userID string) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, description, date, time, priority, status, deadline, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY date ASC, created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	res, err := s.db.Exec(`
		UPDATE tasks
		SET title = ?, description = ?, date = ?, time = ?, priority = ?, status = ?, deadline = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		task.Title, task.Description, task.Date, task.Time,
		string(task.Priority), string(task.Status), task.Deadline,
		task.UpdatedAt.UTC().Format(time.RFC3339),
		task.ID, task.UserID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task with id %s not found", task.ID)
	}
	return nil
}

func (s *Store) DeleteTask(userID, id string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task with id %s not found", id)
	}
	return nil
}
