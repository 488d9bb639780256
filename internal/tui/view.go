package tui

import (
	"fmt"
	"strings"

	"github.com/goaltrack/goaltrack/internal/studytimer"
	"github.com/goaltrack/goaltrack/internal/utils"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Study Timer"))
	b.WriteString("\n\n")

	switch m.timer.State() {
	case studytimer.StateIdle:
		b.WriteString(m.taskPicker())
	case studytimer.StateRunning:
		b.WriteString(fmt.Sprintf("%s  %s\n",
			clockStyle.Render(utils.FormatDuration(m.timer.Elapsed())),
			m.timer.TaskTitle()))
	case studytimer.StatePaused:
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			clockStyle.Render(utils.FormatDuration(m.timer.Elapsed())),
			m.timer.TaskTitle(),
			pausedStyle.Render("(paused)")))
	}

	b.WriteString("\n")
	b.WriteString(m.stats())

	if len(m.timer.History()) > 0 {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Recent sessions"))
		b.WriteString("\n")
		b.WriteString(m.history.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) taskPicker() string {
	if len(m.tasks) == 0 {
		return dimStyle.Render("No tasks yet. Add one with: goaltrack task add") + "\n"
	}

	var b strings.Builder
	b.WriteString("Pick a task to study:\n\n")
	for i, task := range m.tasks {
		line := fmt.Sprintf("  %s", task.Title)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %s", task.Title))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) stats() string {
	today := m.timer.SessionsToday(utils.Today())
	return statStyle.Render(fmt.Sprintf(
		"today: %d sessions   total: %s   avg: %s",
		today,
		utils.FormatDuration(m.timer.TotalSeconds()),
		utils.FormatDuration(m.timer.AverageSession()),
	))
}
