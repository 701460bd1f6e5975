package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"simpletodo/internal/commands"
	"simpletodo/internal/i18n"
	"simpletodo/internal/model"
	"simpletodo/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		m.Status = StatusBar{}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		return m.runCommand(input), nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

// runCommand parses and dispatches one palette command. Both parse and handler
// errors land in the status bar; nothing here is fatal.
func (m Model) runCommand(input string) Model {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	next := &m
	result, err := commands.Execute(cmd, commands.Handlers{
		Add:    next.handleAdd,
		Done:   next.handleDone,
		Undo:   next.handleUndo,
		Delete: next.handleDelete,
		View:   next.handleView,
		Lang:   next.handleLang,
	})
	if err != nil {
		next.Status = StatusBar{Text: err.Error(), IsError: true}
		return *next
	}
	next.Status = StatusBar{Text: result.Message}
	next.clampCursor()
	return *next
}

func (m *Model) handleAdd(args commands.AddArgs) (commands.Result, error) {
	category := model.Category(args.Category)
	if category != "" && !category.IsValid() {
		return commands.Result{}, fmt.Errorf("unknown category: %s", args.Category)
	}
	task, err := m.Session.Add(args.Description, category, args.Color, args.DueDate)
	if err != nil {
		return commands.Result{}, err
	}
	if view := views.TaskView(task.Category); view.IsValid() {
		m.CurrentTab = view
	}
	m.Cursor = 0
	return commands.Result{Message: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Added"), task.Description)}, nil
}

func (m *Model) handleDone(args commands.TargetArgs) (commands.Result, error) {
	task, ok := m.Session.Find(args.ID)
	if !ok {
		return commands.Result{}, fmt.Errorf("no task with id %s", args.ID)
	}
	if err := m.Session.Complete(args.ID); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Completed_action"), task.Description)}, nil
}

func (m *Model) handleUndo(args commands.TargetArgs) (commands.Result, error) {
	task, ok := m.Session.Find(args.ID)
	if !ok {
		return commands.Result{}, fmt.Errorf("no task with id %s", args.ID)
	}
	if err := m.Session.Uncomplete(args.ID); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Uncompleted"), task.Description)}, nil
}

func (m *Model) handleDelete(args commands.TargetArgs) (commands.Result, error) {
	task, ok := m.Session.Find(args.ID)
	if !ok {
		return commands.Result{}, fmt.Errorf("no task with id %s", args.ID)
	}
	if err := m.Session.Delete(args.ID); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Deleted"), task.Description)}, nil
}

func (m *Model) handleView(args commands.ViewArgs) (commands.Result, error) {
	view := views.TaskView(args.View)
	if !view.IsValid() {
		return commands.Result{}, fmt.Errorf("unknown view: %s", args.View)
	}
	m.CurrentTab = view
	m.Cursor = 0
	return commands.Result{Message: fmt.Sprintf("view: %s", i18n.T(m.Lang, args.View))}, nil
}

func (m *Model) handleLang(args commands.LangArgs) (commands.Result, error) {
	lang := i18n.Lang(args.Lang)
	if lang != i18n.LangEN && lang != i18n.LangZH {
		return commands.Result{}, fmt.Errorf("unsupported language: %s", args.Lang)
	}
	m.Lang = lang
	return commands.Result{Message: "lang: " + args.Lang}, nil
}
