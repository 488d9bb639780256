package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goaltrack/goaltrack/internal/models"
)

func (s *Store) AddStudySession(session models.StudySession) error {
	var endTime sql.NullString
	if session.EndTime != nil {
		endTime = sql.NullString{String: session.EndTime.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO study_sessions (id, user_id, task_id, task_title, start_time, end_time, duration, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.UserID, session.TaskID, session.TaskTitle,
		session.StartTime.UTC().Format(time.RFC3339), endTime, session.Duration, session.IsActive,
	)
	return err
}

func (s *Store) GetStudySessionsForUser(userID string) ([]models.StudySession, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, task_id, task_title, start_time, end_time, duration, is_active
		FROM study_sessions WHERE user_id = ? ORDER BY start_time DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var sess models.StudySession
		var startTime string
		var endTime sql.NullString

		err := rows.Scan(&sess.ID, &sess.UserID, &sess.TaskID, &sess.TaskTitle,
			&startTime, &endTime, &sess.Duration, &sess.IsActive)
		if err != nil {
			return nil, err
		}

		sess.StartTime, err = time.Parse(time.RFC3339, startTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_time: %w", err)
		}
		if endTime.Valid {
			t, err := time.Parse(time.RFC3339, endTime.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse end_time: %w", err)
			}
			sess.EndTime = &t
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}
