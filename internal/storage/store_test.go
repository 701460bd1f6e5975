package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"simpletodo/internal/model"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	tasks, history, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(tasks) != 0 || len(history) != 0 {
		t.Fatalf("expected empty collections, got %d tasks, %d history", len(tasks), len(history))
	}
}

func TestLoadCorruptFileReturnsEmptyWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(path)
	tasks, history, err := store.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if len(tasks) != 0 || len(history) != 0 {
		t.Fatalf("expected empty collections on corrupt file, got %d tasks, %d history", len(tasks), len(history))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")
	store := NewStore(path)
	now := time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

	task := model.New("Buy milk", model.CategoryDaily, "#FF9500", "2024-01-10", now)
	item := model.NewHistoryItem(model.ActionAdded, task.Description, task.Category, now)

	if err := store.Save([]model.Task{task}, []model.HistoryItem{item}, now); err != nil {
		t.Fatalf("save: %v", err)
	}

	tasks, history, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 1 || tasks[0] != task {
		t.Fatalf("task round trip mismatch:\n got %+v\nwant %+v", tasks, task)
	}
	if len(history) != 1 || history[0] != item {
		t.Fatalf("history round trip mismatch:\n got %+v\nwant %+v", history, item)
	}
}

func TestSaveWritesSchemaFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store := NewStore(path)
	now := time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

	task := model.New("Buy milk", model.CategoryWeekly, "", "", now)
	if err := store.Save([]model.Task{task}, nil, now); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	for _, field := range []string{`"tasks"`, `"history"`, `"last_updated": "2024-01-05 09:30"`, `"task": "Buy milk"`, `"task_type": "weekly"`} {
		if !strings.Contains(content, field) {
			t.Fatalf("expected %s in snapshot:\n%s", field, content)
		}
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{
  "tasks": [
    {"id": "t-1", "task": "Old record", "task_type": "daily", "created_at": "2024-01-01 08:00", "completed": false}
  ],
  "history": [
    {"id": "h-1", "action": "Added", "task_description": "Old record", "task_type": "", "timestamp": "2024-01-01 08:00"}
  ],
  "last_updated": "2024-01-01 08:00"
}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tasks, history, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tasks[0].Color != model.DefaultColor {
		t.Fatalf("expected default color applied, got %q", tasks[0].Color)
	}
	if history[0].TaskType != model.UnknownTaskType {
		t.Fatalf("expected unknown task type applied, got %q", history[0].TaskType)
	}
	if history[0].ID != "h-1" || history[0].Timestamp != "2024-01-01 08:00" {
		t.Fatalf("expected stored id/timestamp preserved, got %+v", history[0])
	}
}
