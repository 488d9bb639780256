package postgres

import (
	"database/sql"
	"fmt"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var t models.Task
	var priority, status string

	err := scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Date, &t.Time,
		&priority, &status, &t.Deadline, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	t.Priority = constants.Priority(priority)
	t.Status = constants.Status(status)
	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, user_id, title, description, date, time, priority, status, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		task.ID, task.UserID, task.Title, task.Description, task.Date, task.Time,
		string(task.Priority), string(task.Status), task.Deadline,
		task.CreatedAt.UTC(), task.UpdatedAt.UTC(),
	)
	return err
}

func (s *Store) GetTask(userID, id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, title, description, date, time, priority, status, deadline, created_at, updated_at
		FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)

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
		FROM tasks WHERE user_id = $1 ORDER BY date ASC, created_at ASC`, userID)
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
		SET title = $1, description = $2, date = $3, time = $4, priority = $5, status = $6, deadline = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10`,
		task.Title, task.Description, task.Date, task.Time,
		string(task.Priority), string(task.Status), task.Deadline,
		task.UpdatedAt.UTC(), task.ID, task.UserID,
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
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
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
