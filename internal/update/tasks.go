package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"daytick/internal/dates"
	"daytick/internal/engine"
)

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Visible.Tasks)-1 {
			m.Cursor++
		}
	case "left":
		if m.CurrentView == ViewDay {
			if day, err := dates.AddDays(m.SelectedDate, -1); err == nil {
				m.SelectedDate = day
				m.refreshVisible()
			}
		}
	case "right":
		if m.CurrentView == ViewDay {
			if day, err := dates.AddDays(m.SelectedDate, 1); err == nil {
				m.SelectedDate = day
				m.refreshVisible()
			}
		}
	case m.Keys.Toggle:
		m.toggleSelected()
	case m.Keys.Hide:
		m.hideSelected()
	case m.Keys.MoveFwd:
		m.moveSelected(1)
	case m.Keys.MoveBack:
		m.moveSelected(-1)
	case m.Keys.Edit:
		if task, ok := m.selectedTask(); ok {
			m.openForm(&task)
		}
	}
	return m
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) Model {
	today := m.today()
	switch msg.String() {
	case "enter":
		if m.Drilldown == "" {
			m.Drilldown = today
			m.refreshVisible()
		}
	case "esc":
		m.Drilldown = ""
		m.Cursor = 0
		m.refreshVisible()
	case "left":
		if m.Drilldown != "" {
			if day, err := dates.AddDays(m.Drilldown, -1); err == nil {
				m.Drilldown = day
				m.refreshVisible()
			}
		}
	case "right":
		if m.Drilldown != "" && m.Drilldown < today {
			if day, err := dates.AddDays(m.Drilldown, 1); err == nil {
				m.Drilldown = day
				m.refreshVisible()
			}
		}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Visible.Tasks)-1 {
			m.Cursor++
		}
	case m.Keys.Toggle:
		if m.Drilldown != "" {
			m.toggleSelected()
		}
	}
	return m
}

func (m Model) handleAlertKey(msg tea.KeyMsg) Model {
	if m.Alarm == nil || m.ActiveAlert == nil {
		return m
	}
	switch msg.String() {
	case "enter":
		alert := *m.ActiveAlert
		m.Alarm.Dismiss()
		m.ActiveAlert = nil
		for _, t := range m.Tasks {
			if t.ID == alert.Task.ID {
				m.replaceTask(engine.ToggleCompletion(t, alert.Date))
				break
			}
		}
		m.Status = StatusBar{Text: "done: " + alert.Task.Text}
	case "esc", m.Keys.Quit:
		m.Alarm.Dismiss()
		m.ActiveAlert = nil
		m.Status = StatusBar{Text: "alarm dismissed"}
	}
	return m
}

func (m *Model) toggleSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.replaceTask(engine.ToggleCompletion(task, m.Visible.Anchor))
}

func (m *Model) hideSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.replaceTask(engine.HideForDate(task, m.Visible.Anchor))
	m.Status = StatusBar{Text: fmt.Sprintf("removed %q from %s", task.Text, m.Visible.Anchor)}
}

func (m *Model) moveSelected(direction int) {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	moved, err := engine.MoveOccurrence(task, m.Visible.Anchor, direction)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.replaceTask(moved)
	if direction > 0 {
		m.Status = StatusBar{Text: fmt.Sprintf("moved %q to tomorrow", task.Text)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("moved %q to yesterday", task.Text)}
	}
}
