// Package studytimer implements the study session stopwatch: a small state
// machine that counts whole seconds while running and archives finished
// sessions in memory, most recent first.
package studytimer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goaltrack/goaltrack/internal/constants"
	"github.com/goaltrack/goaltrack/internal/models"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer is not safe for concurrent use; the TUI drives it from a single
// update loop.
type Timer struct {
	state     State
	userID    string
	taskID    string
	taskTitle string
	elapsed   int
	startedAt time.Time
	history   []models.StudySession

	now func() time.Time
}

func New(userID string) *Timer {
	return &Timer{userID: userID, now: time.Now}
}

func (t *Timer) State() State      { return t.state }
func (t *Timer) Elapsed() int      { return t.elapsed }
func (t *Timer) TaskID() string    { return t.taskID }
func (t *Timer) TaskTitle() string { return t.taskTitle }

// Start opens a session for the given task. Only legal from idle.
func (t *Timer) Start(taskID, taskTitle string) error {
	if t.state != StateIdle {
		return fmt.Errorf("cannot start timer while %s", t.state)
	}
	t.state = StateRunning
	t.taskID = taskID
	t.taskTitle = taskTitle
	t.elapsed = 0
	t.startedAt = t.now()
	return nil
}

func (t *Timer) Pause() error {
	if t.state != StateRunning {
		return fmt.Errorf("cannot pause timer while %s", t.state)
	}
	t.state = StatePaused
	return nil
}

func (t *Timer) Resume() error {
	if t.state != StatePaused {
		return fmt.Errorf("cannot resume timer while %s", t.state)
	}
	t.state = StateRunning
	return nil
}

// Tick advances the stopwatch by one second. Ticks received while paused or
// idle are dropped.
func (t *Timer) Tick() {
	if t.state == StateRunning {
		t.elapsed++
	}
}

// Reset zeroes the elapsed count but keeps the session open in its current
// state.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Stop closes the open session, archives it at the front of the history and
// returns it. The duration is the elapsed count at the moment of the stop.
func (t *Timer) Stop() (models.StudySession, error) {
	if t.state == StateIdle {
		return models.StudySession{}, fmt.Errorf("no session to stop")
	}

	end := t.now()
	session := models.StudySession{
		ID:        uuid.NewString(),
		UserID:    t.userID,
		TaskID:    t.taskID,
		TaskTitle: t.taskTitle,
		StartTime: t.startedAt,
		EndTime:   &end,
		Duration:  t.elapsed,
	}

	t.history = append([]models.StudySession{session}, t.history...)
	t.state = StateIdle
	t.taskID = ""
	t.taskTitle = ""
	t.elapsed = 0
	return session, nil
}

// History returns archived sessions, most recent first.
func (t *Timer) History() []models.StudySession {
	return t.history
}

// TotalSeconds is the sum of all archived session durations.
func (t *Timer) TotalSeconds() int {
	total := 0
	for _, s := range t.history {
		total += s.Duration
	}
	return total
}

// TotalForTask sums archived durations for one task.
func (t *Timer) TotalForTask(taskID string) int {
	total := 0
	for _, s := range t.history {
		if s.TaskID == taskID {
			total += s.Duration
		}
	}
	return total
}

// SessionsToday counts archived sessions started on the given date (YYYY-MM-DD).
func (t *Timer) SessionsToday(today string) int {
	count := 0
	for _, s := range t.history {
		if s.StartTime.Format(constants.DateFormat) == today {
			count++
		}
	}
	return count
}

// AverageSession is the mean archived duration in whole seconds, 0 with no
// history.
func (t *Timer) AverageSession() int {
	if len(t.history) == 0 {
		return 0
	}
	return t.TotalSeconds() / len(t.history)
}
