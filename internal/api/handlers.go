package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goaltrack/goaltrack/internal/constants"
	apperrors "github.com/goaltrack/goaltrack/internal/errors"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/notify"
	"github.com/goaltrack/goaltrack/internal/notion"
	"github.com/goaltrack/goaltrack/internal/streaks"
	"github.com/goaltrack/goaltrack/internal/utils"
)

func writeError(c *gin.Context, err error) {
	var storeErr *apperrors.StoreError
	switch {
	case errors.Is(err, apperrors.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.As(err, &storeErr):
		if strings.Contains(storeErr.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": storeErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": storeErr.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// Task handlers. Every mutation answers with the refreshed task list so
// clients never need a follow-up read.

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.client(c).List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := s.client(c).Create(task)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": tasks})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var update models.TaskUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := s.client(c).Update(c.Param("id"), update)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	tasks, err := s.client(c).Delete(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleToggleTask(c *gin.Context) {
	tasks, err := s.client(c).ToggleStatus(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Derived views.

func (s *Server) handleHabits(c *gin.Context) {
	tasks, err := s.client(c).List()
	if err != nil {
		writeError(c, err)
		return
	}

	habits := streaks.BuildHabits(tasks, utils.Today())
	c.JSON(http.StatusOK, gin.H{
		"habits": habits,
		"stats": gin.H{
			"active_streaks": streaks.ActiveStreaks(habits),
			"avg_completion": streaks.AvgHabitCompletion(habits),
			"best_streak":    streaks.BestHabitStreak(habits),
		},
	})
}

func (s *Server) handleCalendar(c *gin.Context) {
	tasks, err := s.client(c).List()
	if err != nil {
		writeError(c, err)
		return
	}

	days := streaks.BuildCalendar(tasks, utils.Today(), constants.CalendarWindowDays)
	c.JSON(http.StatusOK, gin.H{
		"days": days,
		"stats": gin.H{
			"current_streak":  streaks.CalendarCurrent(days),
			"best_streak":     streaks.CalendarBest(days),
			"avg_completion":  streaks.AvgCalendarCompletion(days),
			"total_completed": streaks.TotalCompleted(days),
			"perfect_days":    streaks.PerfectDays(days),
		},
	})
}

func (s *Server) handleToday(c *gin.Context) {
	tasks, err := s.client(c).List()
	if err != nil {
		writeError(c, err)
		return
	}

	today := utils.Today()
	var todays []models.Task
	completed := 0
	for _, task := range tasks {
		if task.Date != today {
			continue
		}
		todays = append(todays, task)
		if task.Status == constants.StatusCompleted {
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":      todays,
		"completed":  completed,
		"total":      len(todays),
		"percentage": streaks.CompletionPercent(completed, len(todays)),
	})
}

// Notifications.

type sendNotificationsRequest struct {
	Type string `json:"type"`
}

func (s *Server) handleSendNotifications(c *gin.Context) {
	if s.notifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "RESEND_API_KEY not configured"})
		return
	}

	var req sendNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Type {
	case notify.TriggerOverdue, notify.TriggerStreaks, notify.TriggerManual:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown notification type %q", req.Type)})
		return
	}

	sent, err := s.notifier.Run(req.Type)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"notifications_sent": sent,
		"message":            fmt.Sprintf("Successfully sent %d notifications", sent),
	})
}

func (s *Server) handleListNotifications(c *gin.Context) {
	records, err := s.client(c).RecentNotifications()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": records})
}

// Notion sync proxy. Upstream failures abort only the current request and
// surface the upstream error text.

func writeNotionError(c *gin.Context, err error) {
	var syncErr *apperrors.UpstreamSyncError
	if errors.As(err, &syncErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": syncErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) notionReady(c *gin.Context) bool {
	if s.notion == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "notion credentials not configured"})
		return false
	}
	return true
}

func (s *Server) handleNotionList(c *gin.Context) {
	if !s.notionReady(c) {
		return
	}
	tasks, err := s.notion.ListTasks()
	if err != nil {
		writeNotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleNotionCreate(c *gin.Context) {
	if !s.notionReady(c) {
		return
	}
	var task notion.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.notion.CreateTask(task); err != nil {
		writeNotionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (s *Server) handleNotionUpdate(c *gin.Context) {
	if !s.notionReady(c) {
		return
	}
	var update notion.TaskUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = c.Param("id")
	if err := s.notion.UpdateTask(update); err != nil {
		writeNotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleNotionDelete(c *gin.Context) {
	if !s.notionReady(c) {
		return
	}
	if err := s.notion.ArchiveTask(c.Param("id")); err != nil {
		writeNotionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
