package update

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"simpletodo/internal/i18n"
	"simpletodo/internal/model"
	"simpletodo/internal/session"
	"simpletodo/internal/views"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Daily     string
	Weekly    string
	Monthly   string
	Completed string
	Add       string
	Help      string
	Lang      string
	Quit      string
}

// tabOrder fixes the on-screen ordering of the four views.
var tabOrder = []views.TaskView{views.ViewDaily, views.ViewWeekly, views.ViewMonthly, views.ViewCompleted}

type FormField int

const (
	FieldDescription FormField = iota
	FieldCategory
	FieldColor
	FieldDueDate
)

type AddFormState struct {
	Active   bool
	Field    FormField
	Category model.Category
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Session     *session.Session
	CurrentTab  views.TaskView
	Cursor      int
	Lang        i18n.Lang
	Status      StatusBar
	HelpVisible bool
	Palette     CommandPaletteState
	Form        AddFormState
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	// Bubble components used for text entry
	descInput    textinput.Model
	colorInput   textinput.Model
	dueInput     textinput.Model
	commandInput textinput.Model

	today func() time.Time
}

type SwitchViewMsg struct {
	View views.TaskView
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(sess *session.Session, lang i18n.Lang) Model {
	if lang != i18n.LangEN && lang != i18n.LangZH {
		lang = i18n.LangEN
	}
	m := Model{
		Session:    sess,
		CurrentTab: views.ViewDaily,
		Lang:       lang,
		Form:       AddFormState{Category: model.CategoryDaily},
		Keys: GlobalKeyMap{
			Daily:     "1",
			Weekly:    "2",
			Monthly:   "3",
			Completed: "4",
			Add:       "a",
			Help:      "?",
			Lang:      "L",
			Quit:      "q",
		},
		today: time.Now,
	}
	m.descInput = textinput.New()
	m.descInput.Placeholder = i18n.T(lang, "task_placeholder")
	m.descInput.CharLimit = 200
	m.colorInput = textinput.New()
	m.colorInput.Placeholder = model.DefaultColor
	m.dueInput = textinput.New()
	m.dueInput.Placeholder = "2006-01-02"
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"

	if sess != nil && sess.LoadWarning != nil {
		m.Status = StatusBar{Text: "error loading data: " + sess.LoadWarning.Error(), IsError: true}
	}
	return m
}

// NewModelWithClock pins "today" for deterministic classifier output in tests.
func NewModelWithClock(sess *session.Session, lang i18n.Lang, today func() time.Time) Model {
	m := NewModel(sess, lang)
	m.today = today
	return m
}

// visibleTasks projects the session collection into the current tab, sorted
// for display.
func (m Model) visibleTasks() []model.Task {
	tasks := views.Filter(m.Session.Tasks, m.CurrentTab)
	if m.CurrentTab == views.ViewCompleted {
		views.SortCompleted(tasks)
	} else {
		views.SortActive(tasks)
	}
	return tasks
}

// selectedTask resolves the cursor against the current projection.
func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.visibleTasks()
	if len(tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) clampCursor() {
	count := len(m.visibleTasks())
	if count == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= count {
		m.Cursor = count - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func tabIndex(tab views.TaskView) int {
	for i, v := range tabOrder {
		if v == tab {
			return i
		}
	}
	return 0
}
