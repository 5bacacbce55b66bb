// Package update holds the Bubble Tea model: view state, key handling, and
// the glue between the pure engine, the alarm scheduler and the store.
package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daytick/internal/commands"
	"daytick/internal/dates"
	"daytick/internal/engine"
	"daytick/internal/model"
	"daytick/internal/scheduler"
	"daytick/internal/storage"
)

type View string

const (
	ViewDay     View = "day"
	ViewWeek    View = "week"
	ViewHistory View = "history"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Day      string
	Week     string
	History  string
	Add      string
	Edit     string
	Toggle   string
	Hide     string
	MoveFwd  string
	MoveBack string
	Theme    string
	Help     string
	Quit     string
}

// Saver is the slice of the store the update loop needs; mutations persist
// synchronously, best-effort.
type Saver interface {
	SaveTasks(ctx context.Context, tasks []model.Task) error
	SaveTheme(ctx context.Context, theme string) error
}

type NoopSaver struct{}

func (NoopSaver) SaveTasks(context.Context, []model.Task) error { return nil }
func (NoopSaver) SaveTheme(context.Context, string) error       { return nil }

type PaletteState struct {
	Active bool
	Input  string
}

// formField enumerates the focusable rows of the add/edit form.
type formField int

const (
	fieldText formField = iota
	fieldTime
	fieldType
	fieldDay
	fieldCategory
	fieldNotes
)

type FormState struct {
	Active bool
	Draft  model.Task
	Field  formField
	Err    string
}

type Model struct {
	CurrentView  View
	SelectedDate string
	Drilldown    string
	Tasks        []model.Task
	Cursor       int
	Visible      engine.ViewResult
	Theme        string
	Status       StatusBar
	HelpVisible  bool
	Quitting     bool
	LastError    error
	Keys         GlobalKeyMap

	Ticker      *scheduler.Ticker
	Alarm       *scheduler.Alarm
	ActiveAlert *scheduler.Alert

	Palette PaletteState
	Form    FormState

	saver Saver
	now   func() time.Time

	textInput    textinput.Model
	timeInput    textinput.Model
	notesArea    textarea.Model
	commandInput textinput.Model
	progressBar  progress.Model
}

type TickMsg struct {
	Tick scheduler.Tick
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewDay,
		Theme:       storage.ThemeDark,
		saver:       NoopSaver{},
		now:         time.Now,
		Keys: GlobalKeyMap{
			Day:      "1",
			Week:     "2",
			History:  "3",
			Add:      "a",
			Edit:     "e",
			Toggle:   " ",
			Hide:     "d",
			MoveFwd:  "m",
			MoveBack: "M",
			Theme:    "t",
			Help:     "?",
			Quit:     "q",
		},
	}
	m.SelectedDate = m.today()
	m.initInputs()
	m.refreshVisible()
	return m
}

type Options struct {
	Tasks  []model.Task
	Theme  string
	Ticker *scheduler.Ticker
	Alarm  *scheduler.Alarm
	Saver  Saver
	Now    func() time.Time
}

func NewModelWithOptions(opts Options) Model {
	m := NewModel()
	m.Tasks = opts.Tasks
	if opts.Theme != "" {
		m.Theme = opts.Theme
	}
	m.Ticker = opts.Ticker
	m.Alarm = opts.Alarm
	if opts.Saver != nil {
		m.saver = opts.Saver
	}
	if opts.Now != nil {
		m.now = opts.Now
	}
	m.SelectedDate = m.today()
	m.refreshVisible()
	return m
}

func (m *Model) initInputs() {
	m.textInput = textinput.New()
	m.textInput.Placeholder = "what needs doing?"
	m.textInput.CharLimit = model.MaxTextLen
	m.timeInput = textinput.New()
	m.timeInput.Placeholder = "HH:mm (optional)"
	m.timeInput.CharLimit = 5
	m.notesArea = textarea.New()
	m.notesArea.Placeholder = "notes (markdown)"
	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add buy milk at 5pm | goto 2024-01-15 | view week | theme light"
	m.progressBar = progress.New(progress.WithDefaultGradient())
}

func (m Model) today() string {
	return dates.Format(m.now())
}

// refreshVisible recomputes the composed view for the current anchor.
func (m *Model) refreshVisible() {
	today := m.today()
	switch m.CurrentView {
	case ViewWeek:
		m.Visible = engine.Compose(m.Tasks, engine.ModeWeek, today, today)
	case ViewHistory:
		if m.Drilldown != "" {
			m.Visible = engine.Compose(m.Tasks, engine.ModeHistory, m.Drilldown, today)
		} else {
			m.Visible = engine.ViewResult{Anchor: today}
		}
	default:
		m.Visible = engine.Compose(m.Tasks, engine.ModeDay, m.SelectedDate, today)
	}
	if m.Cursor >= len(m.Visible.Tasks) {
		m.Cursor = len(m.Visible.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	if len(m.Visible.Tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Visible.Tasks) {
		return model.Task{}, false
	}
	return m.Visible.Tasks[m.Cursor], true
}

// replaceTask swaps a mutated task back into the collection by identity and
// persists the snapshot.
func (m *Model) replaceTask(updated model.Task) {
	for i, t := range m.Tasks {
		if t.ID == updated.ID {
			m.Tasks[i] = updated
			break
		}
	}
	m.persist()
	m.refreshVisible()
}

func (m *Model) persist() {
	if err := m.saver.SaveTasks(context.Background(), m.Tasks); err != nil {
		m.Status = StatusBar{Text: "save failed: " + err.Error(), IsError: true}
	}
}

func (m *Model) persistTheme() {
	if err := m.saver.SaveTheme(context.Background(), m.Theme); err != nil {
		m.Status = StatusBar{Text: "theme save failed: " + err.Error(), IsError: true}
	}
}

func waitForTickCmd(ch <-chan scheduler.Tick) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-ch
		if !ok {
			return nil
		}
		return TickMsg{Tick: tick}
	}
}

// paletteHandlers wires parsed palette commands to model mutations.
func (m *Model) paletteHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.quickAdd(a.Text, a.Time)
			return commands.Result{Message: "added: " + a.Text}, nil
		},
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			m.CurrentView = ViewDay
			m.SelectedDate = a.Date
			m.refreshVisible()
			return commands.Result{Message: "viewing " + a.Date}, nil
		},
		View: func(a commands.ViewArgs) (commands.Result, error) {
			m.switchView(View(a.Name))
			return commands.Result{Message: "view: " + a.Name}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			m.Theme = a.Name
			m.persistTheme()
			return commands.Result{Message: "theme: " + a.Name}, nil
		},
	}
}

func (m *Model) quickAdd(text, clock string) {
	draft := model.NewDraft(m.today())
	draft.Text = text
	draft.Time = clock
	admitted := draft.Admit(m.now())
	if admitted.Text == "" {
		return
	}
	m.Tasks = append(m.Tasks, admitted)
	m.persist()
	m.refreshVisible()
}

func (m *Model) switchView(v View) {
	switch v {
	case ViewDay, ViewWeek, ViewHistory:
		m.CurrentView = v
		m.Cursor = 0
		if v == ViewHistory {
			m.Drilldown = ""
		}
		m.refreshVisible()
	}
}
