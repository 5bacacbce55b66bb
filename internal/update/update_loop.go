package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"daytick/internal/engine"
	"daytick/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Ticker != nil {
		return waitForTickCmd(m.Ticker.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case TickMsg:
		return m.onTick(typed)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A ringing alarm captures the keyboard until resolved.
	if m.ActiveAlert != nil {
		return m.handleAlertKey(msg), nil
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.Form.Active {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Day:
		m.switchView(ViewDay)
		m.SelectedDate = m.today()
		m.refreshVisible()
		return m, nil
	case m.Keys.Week:
		m.switchView(ViewWeek)
		return m, nil
	case m.Keys.History:
		m.switchView(ViewHistory)
		return m, nil
	case m.Keys.Theme:
		if m.Theme == "dark" {
			m.Theme = "light"
		} else {
			m.Theme = "dark"
		}
		m.persistTheme()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Add:
		m.openForm(nil)
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewDay, ViewWeek:
		return m.handleListKey(msg), nil
	case ViewHistory:
		return m.handleHistoryKey(msg), nil
	}
	return m, nil
}

func (m Model) onTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.Alarm != nil {
		m.ActiveAlert = m.Alarm.Check(m.Tasks, msg.Tick.At)
	}
	// Recompose each tick so the view tracks midnight rollover and the
	// one-time rollover rule without an explicit refresh key.
	m.refreshVisible()
	if m.Ticker != nil {
		return m, waitForTickCmd(m.Ticker.C())
	}
	return m, nil
}

func (m Model) View() string {
	th := views.ThemeByName(m.Theme)

	var left, right string
	switch m.CurrentView {
	case ViewHistory:
		left = m.renderHistoryPane(th)
		right = m.renderDetailPane(th)
	default:
		left = m.renderListPane(th)
		right = m.renderDetailPane(th)
	}
	if m.Palette.Active {
		right = "command:\n" + m.commandInput.View()
	}
	if m.Form.Active {
		right = m.renderFormPane(th)
	}
	if m.HelpVisible {
		right = m.renderHelp(th)
	}

	overlay := ""
	if m.ActiveAlert != nil {
		overlay = views.RenderAlert(th, views.AlertData{
			TaskText: m.ActiveAlert.Task.Text,
			Time:     m.ActiveAlert.Task.Time,
			Date:     m.ActiveAlert.Date,
		})
	}

	return views.RenderApp(th, views.AppData{
		Header:     fmt.Sprintf("daytick | %s | %s", m.CurrentView, m.Visible.Anchor),
		LeftPane:   left,
		RightPane:  right,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Overlay:    overlay,
		Footer: fmt.Sprintf("%s day | %s week | %s history | %s add | space done | %s del | %s/%s move | / cmd | %s theme | %s quit",
			m.Keys.Day, m.Keys.Week, m.Keys.History, m.Keys.Add, m.Keys.Hide, m.Keys.MoveFwd, m.Keys.MoveBack, m.Keys.Theme, m.Keys.Quit),
	})
}

func (m Model) renderListPane(th views.Theme) string {
	rows := make([]views.TaskRow, 0, len(m.Visible.Tasks))
	for i, t := range m.Visible.Tasks {
		rows = append(rows, views.TaskRow{
			Task:      t,
			SortDate:  engine.EffectiveSortDate(t, m.Visible.Anchor),
			Completed: t.Completions.Has(m.Visible.Anchor),
			Selected:  i == m.Cursor,
		})
	}
	title := "tasks for " + m.Visible.Anchor
	if m.CurrentView == ViewWeek {
		title = "this week"
	}
	return views.RenderTaskList(th, views.ListData{
		Title:        title,
		Rows:         rows,
		Percent:      m.Visible.Percent,
		ProgressView: m.progressBar.ViewAs(float64(m.Visible.Percent) / 100),
		ShowDates:    m.CurrentView == ViewWeek,
	})
}

func (m Model) renderDetailPane(th views.Theme) string {
	task, ok := m.selectedTask()
	if !ok {
		return th.Muted.Render("no task selected")
	}
	return views.RenderDetail(th, views.DetailData{
		Task:          task,
		NotesRendered: views.RenderMarkdown(task.Notes, m.Theme),
	})
}

func (m Model) renderHistoryPane(th views.Theme) string {
	xp := engine.TotalXP(m.Tasks)
	level := engine.Level(xp)
	pct := engine.LevelProgress(xp)
	drill := ""
	if m.Drilldown != "" {
		drill = m.renderListPane(th)
	}
	return views.RenderHistory(th, views.HistoryData{
		Level:        level,
		XP:           xp,
		ProgressView: m.progressBar.ViewAs(float64(pct) / 100),
		ProgressPct:  pct,
		Streak:       engine.Streak(m.Tasks, m.today()),
		Cells:        engine.Heatmap(m.Tasks, m.today()),
		DrilldownDay: m.Drilldown,
		Drilldown:    drill,
	})
}

func (m Model) renderHelp(th views.Theme) string {
	return th.Header.Render("keys") + "\n" +
		"1/2/3      switch view (day / week / history)\n" +
		"left/right previous / next day\n" +
		"up/down    move cursor\n" +
		"space      toggle done\n" +
		"a / e      add / edit task\n" +
		"d          delete for this day\n" +
		"m / M      move to tomorrow / yesterday\n" +
		"/          command palette\n" +
		"t          toggle theme\n" +
		"q          quit"
}
