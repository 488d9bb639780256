package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goaltrack/goaltrack/internal/models"
)

func (s *Store) AddUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)`,
		user.ID, user.Email, user.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetUser(id string) (models.User, error) {
	return s.getUser("id = ?", id)
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	return s.getUser("email = ?", email)
}

func (s *Store) getUser(where string, arg any) (models.User, error) {
	row := s.db.QueryRow("SELECT id, email, created_at FROM users WHERE "+where, arg)

	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Email, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user not found")
		}
		return models.User{}, err
	}

	var err error
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return u, nil
}

func (s *Store) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, email, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Email, &createdAt); err != nil {
			return nil, err
		}
		u.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
