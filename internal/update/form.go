package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"simpletodo/internal/i18n"
	"simpletodo/internal/model"
	"simpletodo/internal/session"
	"simpletodo/internal/views"
)

var formCategories = []model.Category{model.CategoryDaily, model.CategoryWeekly, model.CategoryMonthly}

// openForm resets and activates the add-task form with the description field
// focused.
func (m Model) openForm() Model {
	m.Form = AddFormState{Active: true, Field: FieldDescription, Category: model.CategoryDaily}
	m.descInput.SetValue("")
	m.colorInput.SetValue("")
	m.dueInput.SetValue("")
	m.descInput.Focus()
	m.colorInput.Blur()
	m.dueInput.Blur()
	return m
}

func (m Model) closeForm() Model {
	m.Form.Active = false
	m.descInput.Blur()
	m.colorInput.Blur()
	m.dueInput.Blur()
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeForm(), nil
	case "enter":
		return m.submitForm(), nil
	case "tab", "down":
		return m.cycleField(1), nil
	case "shift+tab", "up":
		return m.cycleField(-1), nil
	}

	if m.Form.Field == FieldCategory {
		switch msg.String() {
		case "left", "h":
			m.Form.Category = cycleCategory(m.Form.Category, -1)
			return m, nil
		case "right", "l", " ":
			m.Form.Category = cycleCategory(m.Form.Category, 1)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Form.Field {
	case FieldDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case FieldColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
	case FieldDueDate:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

// submitForm creates the task. An empty description is a silent no-op and the
// form stays open; a save failure closes the form and surfaces the error.
func (m Model) submitForm() Model {
	task, err := m.Session.Add(
		m.descInput.Value(),
		m.Form.Category,
		m.colorInput.Value(),
		m.dueInput.Value(),
	)
	if errors.Is(err, session.ErrEmptyDescription) {
		return m
	}
	m = m.closeForm()
	if err != nil {
		m.Status = StatusBar{Text: "error saving data: " + err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", i18n.T(m.Lang, "Added"), task.Description)}
	if view := views.TaskView(task.Category); view.IsValid() {
		m.CurrentTab = view
	}
	m.Cursor = 0
	return m
}

func (m Model) cycleField(delta int) Model {
	next := int(m.Form.Field) + delta
	if next < int(FieldDescription) {
		next = int(FieldDueDate)
	}
	if next > int(FieldDueDate) {
		next = int(FieldDescription)
	}
	m.Form.Field = FormField(next)

	m.descInput.Blur()
	m.colorInput.Blur()
	m.dueInput.Blur()
	switch m.Form.Field {
	case FieldDescription:
		m.descInput.Focus()
	case FieldColor:
		m.colorInput.Focus()
	case FieldDueDate:
		m.dueInput.Focus()
	}
	return m
}

func cycleCategory(current model.Category, delta int) model.Category {
	idx := 0
	for i, c := range formCategories {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(formCategories)) % len(formCategories)
	return formCategories[idx]
}

func (m Model) renderForm() string {
	mark := func(field FormField) string {
		if m.Form.Field == field {
			return ">"
		}
		return " "
	}
	return fmt.Sprintf("%s\n%s %s: %s\n%s %s: %s\n%s %s: %s\n%s %s: %s\n(enter: save, tab: next field, esc: cancel)",
		i18n.T(m.Lang, "add_task"),
		mark(FieldDescription), i18n.T(m.Lang, "task_desc"), m.descInput.View(),
		mark(FieldCategory), i18n.T(m.Lang, "task_type"), i18n.T(m.Lang, string(m.Form.Category)),
		mark(FieldColor), i18n.T(m.Lang, "color"), m.colorInput.View(),
		mark(FieldDueDate), i18n.T(m.Lang, "due_date"), m.dueInput.View(),
	)
}
