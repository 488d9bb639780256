package sqlite

import (
	"database/sql"
	"fmt"
	"time"

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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, string(rec.Type), taskID, streakCount,
		rec.EmailSubject, rec.EmailBody, rec.SentAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetRecentNotifications(userID string, limit int) ([]models.NotificationRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, type, task_id, streak_count, email_subject, email_body, sent_at
		FROM notifications WHERE user_id = ? ORDER BY sent_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.NotificationRecord
	for rows.Next() {
		var rec models.NotificationRecord
		var notifType, sentAt string
		var taskID sql.NullString
		var streakCount sql.NullInt64

		err := rows.Scan(&rec.ID, &rec.UserID, &notifType, &taskID, &streakCount,
			&rec.EmailSubject, &rec.EmailBody, &sentAt)
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
		rec.SentAt, err = time.Parse(time.RFC3339, sentAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sent_at: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
