package postgres

import (
	"database/sql"

	"github.com/goaltrack/goaltrack/internal/models"
)

func (s *Store) AddStudySession(session models.StudySession) error {
	var endTime sql.NullTime
	if session.EndTime != nil {
		endTime = sql.NullTime{Time: session.EndTime.UTC(), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO study_sessions (id, user_id, task_id, task_title, start_time, end_time, duration, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.UserID, session.TaskID, session.TaskTitle,
		session.StartTime.UTC(), endTime, session.Duration, session.IsActive,
	)
	return err
}

func (s *Store) GetStudySessionsForUser(userID string) ([]models.StudySession, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, task_id, task_title, start_time, end_time, duration, is_active
		FROM study_sessions WHERE user_id = $1 ORDER BY start_time DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var sess models.StudySession
		var endTime sql.NullTime

		err := rows.Scan(&sess.ID, &sess.UserID, &sess.TaskID, &sess.TaskTitle,
			&sess.StartTime, &endTime, &sess.Duration, &sess.IsActive)
		if err != nil {
			return nil, err
		}
		if endTime.Valid {
			t := endTime.Time
			sess.EndTime = &t
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}
