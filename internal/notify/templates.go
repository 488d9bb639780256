package notify

import (
	"fmt"

	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/utils"
)

func overdueSubject(taskTitle string) string {
	return fmt.Sprintf("⏰ Task Overdue: %s", taskTitle)
}

func overdueBody(task models.OverdueTask) string {
	dayWord := "day"
	if task.DaysOverdue > 1 {
		dayWord = "days"
	}

	deadline := task.Deadline
	if d, err := utils.ParseDate(task.Deadline); err == nil {
		deadline = d.Format("January 2, 2006")
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #dc2626; margin-bottom: 20px;">📋 Task Overdue Reminder</h2>

  <div style="background-color: #fef2f2; border-left: 4px solid #dc2626; padding: 16px; margin-bottom: 20px;">
    <h3 style="color: #991b1b; margin: 0 0 8px 0;">%s</h3>
    <p style="margin: 0; color: #7f1d1d;">
      This task was due on <strong>%s</strong>
      and is now <strong>%d %s overdue</strong>.
    </p>
  </div>

  <div style="background-color: #f9fafb; padding: 16px; border-radius: 8px; margin-bottom: 20px;">
    <h4 style="margin: 0 0 8px 0; color: #374151;">What you can do:</h4>
    <ul style="margin: 0; padding-left: 20px; color: #6b7280;">
      <li>Mark the task as completed if you've finished it</li>
      <li>Update the deadline if you need more time</li>
      <li>Break down the task into smaller, manageable steps</li>
    </ul>
  </div>

  <p style="color: #6b7280; font-size: 14px; margin-top: 20px;">
    Stay on track with your goals! 🎯<br>
    The Goal Tracker Team
  </p>
</div>`, task.TaskTitle, deadline, task.DaysOverdue, dayWord)
}

func streakSubject(days int) string {
	return fmt.Sprintf("🔥 Congratulations! %d-Day Streak Achieved!", days)
}

func nextMilestoneNudge(days int) string {
	switch {
	case days < 30:
		return "Can you reach 30 days?"
	case days < 60:
		return "Can you reach 60 days?"
	case days < 90:
		return "Can you reach 90 days?"
	case days < 180:
		return "Can you reach 180 days?"
	default:
		return "You're on track for a full year streak!"
	}
}

func streakBody(days int) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #f59e0b; margin: 0; font-size: 32px;">🔥</h1>
    <h2 style="color: #d97706; margin: 8px 0;">Streak Achievement Unlocked!</h2>
  </div>

  <div style="background: linear-gradient(135deg, #f59e0b, #d97706); color: white; padding: 24px; border-radius: 12px; text-align: center; margin-bottom: 20px;">
    <h3 style="margin: 0 0 8px 0; font-size: 24px;">%d Days Strong!</h3>
    <p style="margin: 0; opacity: 0.9;">You've maintained your goal completion streak for %d consecutive days!</p>
  </div>

  <div style="background-color: #fffbeb; border: 1px solid #fde68a; padding: 16px; border-radius: 8px; margin-bottom: 20px;">
    <h4 style="margin: 0 0 8px 0; color: #92400e;">🎯 Your Achievement</h4>
    <p style="margin: 0; color: #a16207;">
      Consistency is the key to success! You've completed at least 80%% of your daily goals for
      <strong>%d consecutive days</strong>. This level of dedication is truly impressive!
    </p>
  </div>

  <div style="background-color: #f0fdf4; border: 1px solid #bbf7d0; padding: 16px; border-radius: 8px; margin-bottom: 20px;">
    <h4 style="margin: 0 0 8px 0; color: #166534;">🚀 Keep Going!</h4>
    <p style="margin: 0; color: #15803d;">
      You're building powerful habits that will serve you well.
      %s
    </p>
  </div>

  <p style="color: #6b7280; font-size: 14px; margin-top: 20px; text-align: center;">
    Keep up the amazing work! 💪<br>
    The Goal Tracker Team
  </p>
</div>`, days, days, days, nextMilestoneNudge(days))
}
