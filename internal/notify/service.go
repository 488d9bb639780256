// Package notify scans the store for overdue tasks and streak milestones
// and delivers email reminders, keeping an audit row for every send.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/mailer"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/storage"
	"github.com/goaltrack/goaltrack/internal/streaks"
	"github.com/goaltrack/goaltrack/internal/utils"
)

// Trigger kinds accepted by Run.
const (
	TriggerOverdue = "check_overdue"
	TriggerStreaks = "check_streaks"
	TriggerManual  = "manual"
)

type Service struct {
	store  storage.Provider
	mailer mailer.Mailer
}

func NewService(store storage.Provider, m mailer.Mailer) *Service {
	return &Service{store: store, mailer: m}
}

// Run executes one notification sweep and returns the number of emails sent.
// A failure on one row never aborts the sweep; it is logged and skipped.
func (s *Service) Run(kind string) (int, error) {
	switch kind {
	case TriggerOverdue:
		return s.sendOverdue()
	case TriggerStreaks:
		return s.sendStreaks()
	case TriggerManual:
		sent, err := s.sendOverdue()
		if err != nil {
			return sent, err
		}
		streakSent, err := s.sendStreaks()
		return sent + streakSent, err
	default:
		return 0, fmt.Errorf("unknown notification trigger %q", kind)
	}
}

func (s *Service) sendOverdue() (int, error) {
	overdue, err := s.store.OverdueTasks(utils.Today())
	if err != nil {
		return 0, fmt.Errorf("fetch overdue tasks: %w", err)
	}

	sent := 0
	for _, task := range overdue {
		subject := overdueSubject(task.TaskTitle)
		body := overdueBody(task)

		if err := s.mailer.Send(task.UserEmail, subject, body); err != nil {
			logger.Error("sending overdue email", "task", task.TaskID, "error", err)
			continue
		}

		rec := models.NotificationRecord{
			ID:           uuid.NewString(),
			UserID:       task.UserID,
			Type:         constants.NotificationOverdueTask,
			TaskID:       task.TaskID,
			EmailSubject: subject,
			EmailBody:    body,
			SentAt:       time.Now(),
		}
		if err := s.store.AddNotification(rec); err != nil {
			logger.Error("recording overdue notification", "task", task.TaskID, "error", err)
		}
		sent++
	}
	return sent, nil
}

func (s *Service) sendStreaks() (int, error) {
	userStreaks, err := s.UserStreaks()
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, streak := range userStreaks {
		if !streak.IsMilestone {
			continue
		}

		subject := streakSubject(streak.CurrentStreak)
		body := streakBody(streak.CurrentStreak)

		if err := s.mailer.Send(streak.UserEmail, subject, body); err != nil {
			logger.Error("sending streak email", "user", streak.UserID, "error", err)
			continue
		}

		rec := models.NotificationRecord{
			ID:           uuid.NewString(),
			UserID:       streak.UserID,
			Type:         constants.NotificationStreakAchievement,
			StreakCount:  streak.CurrentStreak,
			EmailSubject: subject,
			EmailBody:    body,
			SentAt:       time.Now(),
		}
		if err := s.store.AddNotification(rec); err != nil {
			logger.Error("recording streak notification", "user", streak.UserID, "error", err)
		}
		sent++
	}
	return sent, nil
}

// UserStreaks computes the current calendar streak for every user. A day
// counts toward the streak when at least 80% of its tasks were completed.
func (s *Service) UserStreaks() ([]models.UserStreak, error) {
	users, err := s.store.GetAllUsers()
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	today := utils.Today()
	var out []models.UserStreak
	for _, user := range users {
		tasks, err := s.store.GetTasksForUser(user.ID)
		if err != nil {
			logger.Error("fetching tasks for streak scan", "user", user.ID, "error", err)
			continue
		}

		calendar := streaks.BuildCalendar(tasks, today, constants.CalendarWindowDays)
		current := streaks.CalendarCurrent(calendar)
		if current == 0 {
			continue
		}

		out = append(out, models.UserStreak{
			UserID:        user.ID,
			UserEmail:     user.Email,
			CurrentStreak: current,
			IsMilestone:   constants.IsMilestone(current),
		})
	}
	return out, nil
}
