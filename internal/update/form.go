package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"daytick/internal/dates"
	"daytick/internal/engine"
	"daytick/internal/model"
	"daytick/internal/views"
)

var typeCycle = []model.TaskType{
	model.TaskTypeOneTime,
	model.TaskTypeRecurring,
	model.TaskTypeWeekly,
}

var categoryCycle = []model.Category{
	model.CategoryPersonal,
	model.CategoryWork,
	model.CategoryHealth,
	model.CategoryOther,
}

// openForm starts the add/edit form. A nil task opens a fresh draft anchored
// to the selected day; otherwise the task's fields pre-fill the form.
func (m *Model) openForm(task *model.Task) {
	if task == nil {
		m.Form = FormState{Active: true, Draft: model.NewDraft(m.SelectedDate)}
	} else {
		m.Form = FormState{Active: true, Draft: task.Clone()}
	}
	m.Form.Field = fieldText
	m.textInput.SetValue(m.Form.Draft.Text)
	m.timeInput.SetValue(m.Form.Draft.Time)
	m.notesArea.SetValue(m.Form.Draft.Notes)
	m.textInput.Focus()
	m.timeInput.Blur()
	m.notesArea.Blur()
}

func (m *Model) closeForm() {
	m.Form = FormState{}
	m.textInput.Blur()
	m.timeInput.Blur()
	m.notesArea.Blur()
}

func (m *Model) focusFormField(f formField) {
	m.Form.Field = f
	m.textInput.Blur()
	m.timeInput.Blur()
	m.notesArea.Blur()
	switch f {
	case fieldText:
		m.textInput.Focus()
	case fieldTime:
		m.timeInput.Focus()
	case fieldNotes:
		m.notesArea.Focus()
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.Status = StatusBar{Text: "discarded"}
		return m, nil
	case "tab", "down":
		if msg.String() == "down" && m.Form.Field == fieldNotes {
			break
		}
		next := m.Form.Field + 1
		if next > fieldNotes {
			next = fieldText
		}
		m.focusFormField(next)
		return m, nil
	case "shift+tab", "up":
		if msg.String() == "up" && m.Form.Field == fieldNotes {
			break
		}
		prev := m.Form.Field - 1
		if prev < fieldText {
			prev = fieldNotes
		}
		m.focusFormField(prev)
		return m, nil
	case "left", "right":
		if m.cycleFormField(msg.String() == "right") {
			return m, nil
		}
	case "enter":
		if m.Form.Field != fieldNotes {
			return m.submitForm()
		}
	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.Form.Field {
	case fieldText:
		m.textInput, cmd = m.textInput.Update(msg)
	case fieldTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	case fieldNotes:
		m.notesArea, cmd = m.notesArea.Update(msg)
	}
	return m, cmd
}

// cycleFormField steps the enum-valued rows. Reports whether the key was
// consumed.
func (m *Model) cycleFormField(forward bool) bool {
	step := func(i, n int) int {
		if forward {
			return (i + 1) % n
		}
		return (i - 1 + n) % n
	}
	switch m.Form.Field {
	case fieldType:
		i := 0
		for j, tt := range typeCycle {
			if tt == m.Form.Draft.Type {
				i = j
			}
		}
		m.Form.Draft.Type = typeCycle[step(i, len(typeCycle))]
		return true
	case fieldDay:
		day := m.Form.Draft.Weekday()
		next := step(day, 7)
		m.Form.Draft.WeeklyDay = &next
		return true
	case fieldCategory:
		i := 0
		for j, c := range categoryCycle {
			if c == m.Form.Draft.Category {
				i = j
			}
		}
		m.Form.Draft.Category = categoryCycle[step(i, len(categoryCycle))]
		return true
	}
	return false
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft := m.Form.Draft
	draft.Text = model.NormalizeText(m.textInput.Value())
	draft.Time = m.timeInput.Value()
	draft.Notes = m.notesArea.Value()

	if draft.Text == "" {
		m.closeForm()
		m.Status = StatusBar{Text: "discarded empty task"}
		return m, nil
	}
	if draft.Type == model.TaskTypeWeekly && draft.WeeklyDay == nil {
		day, err := dates.Weekday(m.today())
		if err == nil {
			draft.WeeklyDay = &day
		}
	}
	if err := draft.Validate(); err != nil {
		m.Form.Err = err.Error()
		return m, nil
	}

	if draft.IsDraft() {
		m.Tasks = append(m.Tasks, draft.Admit(m.now()))
		m.Status = StatusBar{Text: "added: " + draft.Text}
		m.closeForm()
		m.persist()
		m.refreshVisible()
		return m, nil
	}

	patch := engine.Patch{
		Text:     &draft.Text,
		Type:     &draft.Type,
		Category: &draft.Category,
		Time:     &draft.Time,
		Notes:    &draft.Notes,
	}
	if draft.WeeklyDay != nil {
		patch.WeeklyDay = draft.WeeklyDay
	}
	for _, t := range m.Tasks {
		if t.ID == draft.ID {
			m.replaceTask(engine.EditFields(t, patch, m.today()))
			break
		}
	}
	m.Status = StatusBar{Text: "updated: " + draft.Text}
	m.closeForm()
	return m, nil
}

func (m Model) renderFormPane(th views.Theme) string {
	title := "new task"
	if !m.Form.Draft.IsDraft() {
		title = "edit task"
	}
	fieldNames := map[formField]string{
		fieldText:     "text",
		fieldTime:     "time",
		fieldType:     "type",
		fieldDay:      "day",
		fieldCategory: "category",
		fieldNotes:    "notes",
	}
	return views.RenderForm(th, views.FormData{
		Title:     title,
		TextView:  m.textInput.View(),
		TimeView:  m.timeInput.View(),
		NotesView: m.notesArea.View(),
		Type:      m.Form.Draft.Type,
		Category:  m.Form.Draft.Category,
		WeeklyDay: m.Form.Draft.Weekday(),
		Field:     fieldNames[m.Form.Field],
		ErrorText: m.Form.Err,
	})
}
