package postgres

import (
	"database/sql"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

func (s *Store) AddNotification(rec models.NotificationRecord) error {
	var taskID sql.NullString
	if rec.TaskID != "" {
		taskID = sql.NullString{String: rec.TaskID, Valid: true}
	}
	var streakCount sql.NullInt64
	if rec.StreakCount > 0 {
		streakCount = sql.NullInt64{Int64: int64(rec.StreakCount), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO notifications (id, user_id, type, task_id, streak_count, email_subject, email_body, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, string(rec.Type), taskID, streakCount,
		rec.EmailSubject, rec.EmailBody, rec.SentAt.UTC(),
	)
	return err
}

func (s *Store) GetRecentNotifications(userID string, limit int) ([]models.NotificationRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, type, task_id, streak_count, email_subject, email_body, sent_at
		FROM notifications WHERE user_id = $1 ORDER BY sent_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.NotificationRecord
	for rows.Next() {
		var rec models.NotificationRecord
		var notifType string
		var taskID sql.NullString
		var streakCount sql.NullInt64

		err := rows.Scan(&rec.ID, &rec.UserID, &notifType, &taskID, &streakCount,
			&rec.EmailSubject, &rec.EmailBody, &rec.SentAt)
		if err != nil {
			return nil, err
		}

		rec.Type = constants.NotificationType(notifType)
		if taskID.Valid {
			rec.TaskID = taskID.String
		}
		if streakCount.Valid {
			rec.StreakCount = int(streakCount.Int64)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
