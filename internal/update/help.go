package update

import (
	"fmt"

	"simpletodo/internal/views"
)

func (m Model) renderHelpView() string {
	md := fmt.Sprintf(`# Keys

| Key | Action |
|-----|--------|
| 1-4 | switch view (daily, weekly, monthly, completed) |
| %s | add task |
| j / k | move cursor |
| c | complete selected task |
| u | uncomplete selected task |
| d | delete selected task |
| / | command palette (add, done, undo, delete, view, lang) |
| %s | toggle language |
| %s | toggle this help |
| %s | quit |
`, m.Keys.Add, m.Keys.Lang, m.Keys.Help, m.Keys.Quit)
	return views.RenderMarkdown(md)
}
