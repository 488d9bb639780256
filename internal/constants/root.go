package constants

// Priority represents the priority of a task
type Priority string

// Status represents the completion status of a task
type Status string

// NotificationType represents the kind of notification recorded in the audit log
type NotificationType string

const (
	AppName            = "goaltrack"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/goaltrack/goaltrack.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Priority constants
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	// Status constants
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"

	// Notification types
	NotificationOverdueTask       NotificationType = "overdue_task"
	NotificationStreakAchievement NotificationType = "streak_achievement"

	// CalendarWindowDays is the size of the trailing completion calendar, today inclusive
	CalendarWindowDays = 30

	// StreakDayThreshold is the minimum completion percentage for a calendar
	// day to count toward a streak
	StreakDayThreshold = 80.0

	// NotificationLogLimit is how many audit rows the UI reads
	NotificationLogLimit = 10

	// Email sender identity, fixed
	EmailFrom = "Goal Tracker <onboarding@resend.dev>"

	// Notion defaults applied when a page property is absent
	DefaultNotionTime     = "8:00 pm"
	DefaultNotionPriority = PriorityMedium
	DefaultNotionStatus   = StatusPending

	// Server defaults
	DefaultPort = "8080"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "goaltrack-"
	BackupFileSuffix = ".db"
)

// StreakMilestones are the streak lengths that trigger a congratulatory email.
var StreakMilestones = []int{7, 14, 30, 60, 90, 180, 365}

// IsMilestone reports whether n is exactly one of the milestone streak lengths.
func IsMilestone(n int) bool {
	for _, m := range StreakMilestones {
		if n == m {
			return true
		}
	}
	return false
}
