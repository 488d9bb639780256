// Package tui is the interactive study timer: pick a task, run the stopwatch,
// and review finished sessions.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goaltrack/goaltrack/internal/logger"
	"github.com/goaltrack/goaltrack/internal/models"
	"github.com/goaltrack/goaltrack/internal/storage"
	"github.com/goaltrack/goaltrack/internal/studytimer"
	"github.com/goaltrack/goaltrack/internal/utils"
)

// tickMsg carries the id of the chain that scheduled it. Start and resume
// bump the live id, so a tick still in flight from before a pause identifies
// itself as stale and is dropped instead of double-counting a second.
type tickMsg struct {
	id int
}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

type Model struct {
	client  *storage.Client
	timer   *studytimer.Timer
	record  bool
	tasks   []models.Task
	cursor  int
	tickID  int
	history table.Model
	keys    KeyMap
	help    help.Model
	width   int
	height  int
}

// NewModel builds the study timer around the user's current task list. With
// record set, finished sessions are also persisted through the store.
func NewModel(client *storage.Client, tasks []models.Task, record bool) Model {
	columns := []table.Column{
		{Title: "Task", Width: 28},
		{Title: "Duration", Width: 10},
		{Title: "Started", Width: 8},
	}

	history := table.New(
		table.WithColumns(columns),
		table.WithHeight(5),
	)

	return Model{
		client:  client,
		timer:   studytimer.New(client.UserID()),
		record:  record,
		tasks:   tasks,
		history: history,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		// Count only ticks from the live chain while running; anything else
		// is an orphan from before a pause or stop.
		if msg.id == m.tickID && m.timer.State() == studytimer.StateRunning {
			m.timer.Tick()
			return m, tickCmd(m.tickID)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.timer.State() != studytimer.StateIdle {
				m.stopSession()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.timer.State() == studytimer.StateIdle && m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.timer.State() == studytimer.StateIdle && m.cursor < len(m.tasks)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Start):
			if len(m.tasks) == 0 {
				return m, nil
			}
			task := m.tasks[m.cursor]
			if err := m.timer.Start(task.ID, task.Title); err == nil {
				m.tickID++
				return m, tickCmd(m.tickID)
			}

		case key.Matches(msg, m.keys.Pause):
			switch m.timer.State() {
			case studytimer.StateRunning:
				m.timer.Pause()
			case studytimer.StatePaused:
				m.timer.Resume()
				m.tickID++
				return m, tickCmd(m.tickID)
			}

		case key.Matches(msg, m.keys.Stop):
			m.stopSession()

		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *Model) stopSession() {
	session, err := m.timer.Stop()
	if err != nil {
		return
	}
	if m.record {
		if err := m.client.RecordStudySession(session); err != nil {
			logger.Warn("Failed to record study session", "error", err)
		}
	}
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	rows := make([]table.Row, 0, len(m.timer.History()))
	for _, session := range m.timer.History() {
		rows = append(rows, table.Row{
			session.TaskTitle,
			utils.FormatDuration(session.Duration),
			session.StartTime.Format("15:04"),
		})
	}
	m.history.SetRows(rows)
}
