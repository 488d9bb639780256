package sqlite

import (
	"github.com/goaltrack/goaltrack/internal/models"
)

// OverdueTasks returns every non-completed task across all users whose
// deadline is strictly before today, with the whole-day overdue distance.
// SQLite stores dates as YYYY-MM-DD strings, so julianday gives the day diff.
func (s *Store) OverdueTasks(today string) ([]models.OverdueTask, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.title, t.deadline,
		       CAST(julianday(?) - julianday(t.deadline) AS INTEGER) AS days_overdue,
		       t.user_id, u.email
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE t.status != 'completed' AND t.deadline < ?
		ORDER BY t.deadline ASC`, today, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overdue []models.OverdueTask
	for rows.Next() {
		var o models.OverdueTask
		err := rows.Scan(&o.TaskID, &o.TaskTitle, &o.Deadline, &o.DaysOverdue, &o.UserID, &o.UserEmail)
		if err != nil {
			return nil, err
		}
		overdue = append(overdue, o)
	}

	return overdue, rows.Err()
}
