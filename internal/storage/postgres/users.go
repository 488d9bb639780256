package postgres

import (
	"database/sql"
	"fmt"

	"github.com/goaltrack/goaltrack/internal/models"
)

func (s *Store) AddUser(user models.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, created_at) VALUES ($1, $2, $3)`,
		user.ID, user.Email, user.CreatedAt.UTC(),
	)
	return err
}

func (s *Store) GetUser(id string) (models.User, error) {
	return s.getUser("id = $1", id)
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	return s.getUser("email = $1", email)
}

func (s *Store) getUser(where string, arg any) (models.User, error) {
	row := s.db.QueryRow("SELECT id, email, created_at FROM users WHERE "+where, arg)

	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user not found")
		}
		return models.User{}, err
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
		if err := rows.Scan(&u.ID, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
