package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"simpletodo/internal/duedate"
	"simpletodo/internal/i18n"
	"simpletodo/internal/model"
)

type AppData struct {
	Header     string
	Tabs       string
	Body       string
	StatusLine string
	Footer     string
	Overlay    string
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(76)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneTextStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	metaStyle      = lipgloss.NewStyle().Faint(true)
)

func RenderApp(data AppData) string {
	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		data.Tabs,
		panelStyle.Render(data.Body),
		status,
	}
	if data.Overlay != "" {
		lines = append(lines, panelStyle.Render(data.Overlay))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderTabs(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == active {
			parts = append(parts, activeTabStyle.Render(fmt.Sprintf("[%d:%s]", i+1, label)))
			continue
		}
		parts = append(parts, tabStyle.Render(fmt.Sprintf(" %d:%s ", i+1, label)))
	}
	return strings.Join(parts, " ")
}

// RenderTaskList renders one card per task in the order given. The cursor row
// is marked with ">", completed descriptions are struck through, and each card
// carries its due-date line from the classifier.
func RenderTaskList(tasks []model.Task, statuses []duedate.Status, cursor int, lang i18n.Lang) string {
	if len(tasks) == 0 {
		return i18n.T(lang, "no_tasks")
	}
	var b strings.Builder
	for i, task := range tasks {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		accent := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Color))
		desc := task.Description
		if task.Completed {
			desc = doneTextStyle.Render(desc)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, accent.Render("●"), desc))
		info := DueInfo(statuses[i], lang)
		if info != "" {
			b.WriteString("    " + metaStyle.Render(info) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// DueInfo formats the classifier output for a task card. The icons and labels
// live here; the classifier only decides the category and day delta.
func DueInfo(status duedate.Status, lang i18n.Lang) string {
	switch status.Category {
	case duedate.Completed:
		if status.CompletedAt != "" {
			return fmt.Sprintf("✓ %s %s", i18n.T(lang, "Completed"), status.CompletedAt)
		}
		return fmt.Sprintf("✓ %s", i18n.T(lang, "Completed"))
	case duedate.Overdue:
		return fmt.Sprintf("🔥 %s %d %s", i18n.T(lang, "Overdue"), status.Days, i18n.T(lang, "days"))
	case duedate.DueToday:
		return fmt.Sprintf("⏰ %s", i18n.T(lang, "Due today"))
	case duedate.DueSoon:
		return fmt.Sprintf("🗓️ %s %d %s", i18n.T(lang, "Due in"), status.Days, i18n.T(lang, "days"))
	case duedate.DueLater:
		return fmt.Sprintf("🗓️ %s %s", i18n.T(lang, "Due"), status.DueDate.Format("Jan 02, 2006"))
	case duedate.InvalidDueDate:
		return fmt.Sprintf("🗓️ %s (Invalid)", status.Raw)
	default:
		return ""
	}
}

// RenderHistoryPanel renders the activity log, newest first, already capped by
// the caller via RecentHistory.
func RenderHistoryPanel(items []model.HistoryItem, lang i18n.Lang) string {
	if len(items) == 0 {
		return i18n.T(lang, "no_history")
	}
	var b strings.Builder
	b.WriteString(i18n.T(lang, "history") + ":\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%s: %q\n", i18n.T(lang, string(item.Action)), item.TaskDescription))
		b.WriteString("  " + metaStyle.Render(fmt.Sprintf("%s: %s | %s",
			i18n.T(lang, "task_type"), historyTypeLabel(item.TaskType, lang), item.Timestamp)) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// historyTypeLabel localizes known categories and passes free-form stored
// values through untouched.
func historyTypeLabel(taskType string, lang i18n.Lang) string {
	switch taskType {
	case string(model.CategoryDaily), string(model.CategoryWeekly), string(model.CategoryMonthly):
		return i18n.T(lang, taskType)
	default:
		return taskType
	}
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
