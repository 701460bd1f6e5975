package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"simpletodo/internal/duedate"
	"simpletodo/internal/i18n"
	"simpletodo/internal/model"
	"simpletodo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Form.Active {
			return m.handleFormKey(typed)
		}

		switch typed.String() {
		case m.Keys.Daily:
			return m.switchTab(views.ViewDaily), nil
		case m.Keys.Weekly:
			return m.switchTab(views.ViewWeekly), nil
		case m.Keys.Monthly:
			return m.switchTab(views.ViewMonthly), nil
		case m.Keys.Completed:
			return m.switchTab(views.ViewCompleted), nil
		case m.Keys.Add:
			return m.openForm(), nil
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Lang:
			m.Lang = i18n.Toggle(m.Lang)
			return m, nil
		case "j", "down":
			m.Cursor++
			m.clampCursor()
			return m, nil
		case "k", "up":
			m.Cursor--
			m.clampCursor()
			return m, nil
		case "c":
			return m.completeSelected(), nil
		case "u":
			return m.uncompleteSelected(), nil
		case "d":
			return m.deleteSelected(), nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

	case SwitchViewMsg:
		if typed.View.IsValid() {
			return m.switchTab(typed.View), nil
		}
		return m, nil
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

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	labels := make([]string, len(tabOrder))
	for i, tab := range tabOrder {
		labels[i] = i18n.T(m.Lang, string(tab))
	}

	overlay := ""
	switch {
	case m.Form.Active:
		overlay = m.renderForm()
	case m.Palette.Active:
		overlay = fmt.Sprintf("command: %s", m.commandInput.View())
	case m.HelpVisible:
		overlay = m.renderHelpView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("%s | %s", i18n.T(m.Lang, "title"), i18n.T(m.Lang, string(m.CurrentTab))),
		Tabs:       views.RenderTabs(labels, tabIndex(m.CurrentTab)),
		Body:       m.renderBody(),
		StatusLine: status,
		Overlay:    overlay,
		Footer: fmt.Sprintf("keys: 1-4 views | %s add | j/k move | c/u/d done/undo/delete | / cmd | %s lang | %s help | %s quit",
			m.Keys.Add, m.Keys.Lang, m.Keys.Help, m.Keys.Quit),
	})
}

// renderBody renders the current projection; the completed tab also shows the
// activity log, capped to the most recent entries.
func (m Model) renderBody() string {
	tasks := m.visibleTasks()
	statuses := make([]duedate.Status, len(tasks))
	today := m.today()
	for i, task := range tasks {
		statuses[i] = duedate.Classify(task, today)
	}
	body := views.RenderTaskList(tasks, statuses, m.Cursor, m.Lang)

	if m.CurrentTab == views.ViewCompleted {
		log := make([]model.HistoryItem, len(m.Session.History))
		copy(log, m.Session.History)
		views.SortHistory(log)
		body += "\n\n" + views.RenderHistoryPanel(views.RecentHistory(log), m.Lang)
	}
	return body
}

func (m Model) switchTab(tab views.TaskView) Model {
	m.CurrentTab = tab
	m.Cursor = 0
	return m
}

func (m Model) completeSelected() Model {
	task, ok := m.selectedTask()
	if !ok || task.Completed {
		return m
	}
	if err := m.Session.Complete(task.ID); err != nil {
		m.Status = StatusBar{Text: "error saving data: " + err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Completed_action"), task.Description)}
	m.clampCursor()
	return m
}

func (m Model) uncompleteSelected() Model {
	task, ok := m.selectedTask()
	if !ok || !task.Completed {
		return m
	}
	if err := m.Session.Uncomplete(task.ID); err != nil {
		m.Status = StatusBar{Text: "error saving data: " + err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Uncompleted"), task.Description)}
	m.clampCursor()
	return m
}

func (m Model) deleteSelected() Model {
	task, ok := m.selectedTask()
	if !ok {
		return m
	}
	if err := m.Session.Delete(task.ID); err != nil {
		m.Status = StatusBar{Text: "error saving data: " + err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Deleted"), task.Description)}
	m.clampCursor()
	return m
}
