package update

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"simpletodo/internal/i18n"
	"simpletodo/internal/session"
	"simpletodo/internal/storage"
	"simpletodo/internal/views"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := storage.NewStore(filepath.Join(t.TempDir(), "data.json"))
	clock := func() time.Time {
		return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	}
	sess := session.NewWithClock(store, clock)
	return NewModelWithClock(sess, i18n.LangEN, clock)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentTab != views.ViewDaily {
		t.Fatalf("expected default tab %q, got %q", views.ViewDaily, m.CurrentTab)
	}
	if m.Keys.Quit != "q" || m.Keys.Add != "a" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
	if m.Status.Text != "" {
		t.Fatalf("expected empty status on clean load, got %+v", m.Status)
	}
}

func TestUpdateKeySwitchesTab(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	if next.CurrentTab != views.ViewWeekly {
		t.Fatalf("expected weekly tab, got %q", next.CurrentTab)
	}

	updated, _ = next.Update(keyRunes("4"))
	next = updated.(Model)
	if next.CurrentTab != views.ViewCompleted {
		t.Fatalf("expected completed tab, got %q", next.CurrentTab)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: views.ViewMonthly})
	next := updated.(Model)
	if next.CurrentTab != views.ViewMonthly {
		t.Fatalf("expected monthly tab, got %q", next.CurrentTab)
	}

	updated, _ = next.Update(SwitchViewMsg{View: views.TaskView("unknown")})
	next = updated.(Model)
	if next.CurrentTab != views.ViewMonthly {
		t.Fatalf("expected tab unchanged for unknown view, got %q", next.CurrentTab)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error state: lastErr=%v status=%+v", next.LastError, next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t)
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "Simple & Clear To-Do") {
		t.Fatalf("expected title in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "All clear!") {
		t.Fatalf("expected empty-state text in output: %q", out)
	}
}

func TestAddFormFlow(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	if !next.Form.Active {
		t.Fatal("expected form active after add key")
	}

	updated, _ = next.Update(keyRunes("write release notes"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Form.Active {
		t.Fatal("expected form closed after submit")
	}
	if len(next.Session.Tasks) != 1 || next.Session.Tasks[0].Description != "write release notes" {
		t.Fatalf("unexpected tasks: %+v", next.Session.Tasks)
	}
	if !strings.Contains(next.Status.Text, "Added") {
		t.Fatalf("expected added status, got %q", next.Status.Text)
	}
	if next.CurrentTab != views.ViewDaily {
		t.Fatalf("expected daily tab after add, got %q", next.CurrentTab)
	}
}

func TestAddFormEmptyDescriptionIsNoOp(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Form.Active {
		t.Fatal("expected form to stay open on empty description")
	}
	if len(next.Session.Tasks) != 0 {
		t.Fatalf("expected no task created, got %+v", next.Session.Tasks)
	}
	if next.Status.IsError {
		t.Fatalf("expected no error surfaced, got %+v", next.Status)
	}
}

func TestAddFormCategoryCycle(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	next = updated.(Model)
	if next.Form.Field != FieldCategory {
		t.Fatalf("expected category field, got %d", next.Form.Field)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	next = updated.(Model)
	if next.Form.Category != "weekly" {
		t.Fatalf("expected weekly after cycle, got %q", next.Form.Category)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next = updated.(Model)
	if next.Form.Category != "daily" {
		t.Fatalf("expected daily after cycling back, got %q", next.Form.Category)
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("add pay rent due:2024-02-01 type:monthly"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after enter")
	}
	if len(next.Session.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(next.Session.Tasks))
	}
	task := next.Session.Tasks[0]
	if task.Description != "pay rent" || task.Category != "monthly" || task.DueDate != "2024-02-01" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if next.CurrentTab != views.ViewMonthly {
		t.Fatalf("expected monthly tab after add, got %q", next.CurrentTab)
	}
}

func TestPaletteAddRejectsUnknownCategory(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("add ghost task type:yearly"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if len(next.Session.Tasks) != 0 {
		t.Fatalf("expected no task created, got %+v", next.Session.Tasks)
	}
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "unknown category") {
		t.Fatalf("expected unknown category error status, got %+v", next.Status)
	}
}

func TestPaletteAddDefaultsEmptyCategory(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("add water plants"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if len(next.Session.Tasks) != 1 || next.Session.Tasks[0].Category != "daily" {
		t.Fatalf("expected daily task, got %+v", next.Session.Tasks)
	}
	if daily := views.Filter(next.Session.Tasks, views.ViewDaily); len(daily) != 1 {
		t.Fatalf("expected task visible in daily view, got %+v", daily)
	}
}

func TestPaletteUnknownCommandSurfacesError(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError || !strings.Contains(next.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown_command error status, got %+v", next.Status)
	}
}

func TestPaletteDoneCommand(t *testing.T) {
	m := newTestModel(t)
	task, err := m.Session.Add("ship it", "daily", "", "")
	if err != nil {
		t.Fatal(err)
	}

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("done " + task.ID))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	got, ok := next.Session.Find(task.ID)
	if !ok || !got.Completed {
		t.Fatalf("expected task completed, got %+v", got)
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
}

func TestCompleteAndUncompleteSelected(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.Session.Add("water plants", "daily", "", ""); err != nil {
		t.Fatal(err)
	}

	updated, _ := m.Update(keyRunes("c"))
	next := updated.(Model)
	if len(next.visibleTasks()) != 0 {
		t.Fatal("expected task gone from daily tab after completion")
	}
	if !strings.Contains(next.Status.Text, "Completed") {
		t.Fatalf("expected completed status, got %q", next.Status.Text)
	}

	updated, _ = next.Update(keyRunes("4"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("u"))
	next = updated.(Model)
	if !strings.Contains(next.Status.Text, "Uncompleted") {
		t.Fatalf("expected uncompleted status, got %q", next.Status.Text)
	}
	if len(next.Session.History) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(next.Session.History))
	}
}

func TestCompletedTabShowsActivityLog(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.Session.Add("archive old notes", "daily", "", ""); err != nil {
		t.Fatal(err)
	}

	updated, _ := m.Update(keyRunes("4"))
	next := updated.(Model)
	out := next.View()
	if !strings.Contains(out, "Activity Log") {
		t.Fatalf("expected activity log on completed tab: %q", out)
	}
	if !strings.Contains(out, "archive old notes") {
		t.Fatalf("expected logged description in output: %q", out)
	}
}

func TestLangToggleKey(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("L"))
	next := updated.(Model)
	if next.Lang != i18n.LangZH {
		t.Fatalf("expected zh after toggle, got %q", next.Lang)
	}
	if !strings.Contains(next.View(), "轻简待办事项") {
		t.Fatal("expected zh title in output")
	}
}

func TestLoadWarningSurfacesOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	sess := session.New(storage.NewStore(path))
	m := NewModel(sess, i18n.LangEN)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "error loading data") {
		t.Fatalf("expected load warning status, got %+v", m.Status)
	}
	if len(sess.Tasks) != 0 {
		t.Fatalf("expected empty tasks after corrupt load, got %+v", sess.Tasks)
	}
}
