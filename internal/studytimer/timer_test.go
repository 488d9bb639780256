package studytimer

import (
	"testing"
	"time"

	"github.com/goaltrack/goaltrack/internal/utils"
)

func tick(t *Timer, n int) {
	for i := 0; i < n; i++ {
		t.Tick()
	}
}

func TestPauseFreezesElapsed(t *testing.T) {
	timer := New("u1")
	if err := timer.Start("t1", "Read"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	tick(timer, 5)
	if timer.Elapsed() != 5 {
		t.Fatalf("elapsed = %d, want 5", timer.Elapsed())
	}

	if err := timer.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	tick(timer, 3)
	if timer.Elapsed() != 5 {
		t.Fatalf("elapsed advanced while paused: %d", timer.Elapsed())
	}

	if err := timer.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	tick(timer, 2)

	session, err := timer.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if session.Duration != 7 {
		t.Errorf("duration = %d, want 7", session.Duration)
	}
	if timer.State() != StateIdle {
		t.Errorf("state after stop = %v", timer.State())
	}
}

func TestIllegalTransitions(t *testing.T) {
	timer := New("u1")

	if err := timer.Pause(); err == nil {
		t.Error("pause from idle should fail")
	}
	if err := timer.Resume(); err == nil {
		t.Error("resume from idle should fail")
	}
	if _, err := timer.Stop(); err == nil {
		t.Error("stop from idle should fail")
	}

	timer.Start("t1", "Read")
	if err := timer.Start("t2", "Write"); err == nil {
		t.Error("start while running should fail")
	}
	if err := timer.Resume(); err == nil {
		t.Error("resume while running should fail")
	}
}

func TestResetKeepsSessionOpen(t *testing.T) {
	timer := New("u1")
	timer.Start("t1", "Read")
	tick(timer, 10)

	timer.Reset()
	if timer.Elapsed() != 0 {
		t.Errorf("elapsed = %d after reset", timer.Elapsed())
	}
	if timer.State() != StateRunning {
		t.Errorf("state = %v, want running", timer.State())
	}

	tick(timer, 4)
	session, _ := timer.Stop()
	if session.Duration != 4 {
		t.Errorf("duration = %d, want 4", session.Duration)
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	timer := New("u1")

	timer.Start("t1", "Read")
	tick(timer, 3)
	timer.Stop()

	timer.Start("t2", "Write")
	tick(timer, 6)
	timer.Stop()

	history := timer.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d", len(history))
	}
	if history[0].TaskTitle != "Write" || history[1].TaskTitle != "Read" {
		t.Errorf("history order: %q then %q", history[0].TaskTitle, history[1].TaskTitle)
	}
	if history[0].EndTime == nil {
		t.Error("archived session missing end time")
	}
}

func TestTotals(t *testing.T) {
	timer := New("u1")
	timer.now = func() time.Time { return time.Now() }

	timer.Start("t1", "Read")
	tick(timer, 10)
	timer.Stop()

	timer.Start("t1", "Read")
	tick(timer, 20)
	timer.Stop()

	timer.Start("t2", "Write")
	tick(timer, 6)
	timer.Stop()

	if got := timer.TotalSeconds(); got != 36 {
		t.Errorf("TotalSeconds = %d, want 36", got)
	}
	if got := timer.TotalForTask("t1"); got != 30 {
		t.Errorf("TotalForTask(t1) = %d, want 30", got)
	}
	if got := timer.SessionsToday(utils.Today()); got != 3 {
		t.Errorf("SessionsToday = %d, want 3", got)
	}
	if got := timer.AverageSession(); got != 12 {
		t.Errorf("AverageSession = %d, want 12", got)
	}
}

func TestAverageSessionEmpty(t *testing.T) {
	if got := New("u1").AverageSession(); got != 0 {
		t.Errorf("AverageSession = %d, want 0", got)
	}
}
