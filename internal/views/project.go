package views

import (
	"sort"
	"time"

	"simpletodo/internal/model"
	"simpletodo/internal/timeutil"
)

type TaskView string

const (
	ViewDaily     TaskView = "daily"
	ViewWeekly    TaskView = "weekly"
	ViewMonthly   TaskView = "monthly"
	ViewCompleted TaskView = "completed"
)

func (v TaskView) IsValid() bool {
	switch v {
	case ViewDaily, ViewWeekly, ViewMonthly, ViewCompleted:
		return true
	default:
		return false
	}
}

// HistoryDisplayLimit caps the rendered activity log. The underlying log is
// never truncated, only the slice handed to the display.
const HistoryDisplayLimit = 30

// Filter projects the live task collection into one of the four named views.
// The category views show open tasks of that category; completed shows every
// completed task regardless of category.
func Filter(tasks []model.Task, view TaskView) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		switch view {
		case ViewCompleted:
			if task.Completed {
				out = append(out, task)
			}
		default:
			if task.Category == string(view) && !task.Completed {
				out = append(out, task)
			}
		}
	}
	return out
}

// SortActive orders open tasks by due date ascending, then creation time
// ascending. Missing or unparseable due dates sort last; unparseable creation
// times sort first. The sort is stable so equal keys keep insertion order.
func SortActive(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		dueI := dueDateKey(tasks[i])
		dueJ := dueDateKey(tasks[j])
		if !dueI.Equal(dueJ) {
			return dueI.Before(dueJ)
		}
		return createdKey(tasks[i]).Before(createdKey(tasks[j]))
	})
}

// SortCompleted orders completed tasks by completion time descending, then
// creation time descending, so the most recently completed comes first.
func SortCompleted(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		completedI := timestampKey(tasks[i].CompletedAt)
		completedJ := timestampKey(tasks[j].CompletedAt)
		if !completedI.Equal(completedJ) {
			return completedI.After(completedJ)
		}
		return createdKey(tasks[i]).After(createdKey(tasks[j]))
	})
}

// SortHistory orders log records by timestamp descending.
func SortHistory(items []model.HistoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return timestampKey(items[i].Timestamp).After(timestampKey(items[j].Timestamp))
	})
}

// RecentHistory returns the display slice of the log, capped at
// HistoryDisplayLimit entries.
func RecentHistory(items []model.HistoryItem) []model.HistoryItem {
	if len(items) <= HistoryDisplayLimit {
		return items
	}
	return items[:HistoryDisplayLimit]
}

func dueDateKey(task model.Task) time.Time {
	parsed, ok := timeutil.ParseDate(task.DueDate)
	if !ok {
		return timeutil.MaxDueDate
	}
	return parsed
}

func createdKey(task model.Task) time.Time {
	return timestampKey(task.CreatedAt)
}

// timestampKey falls back to the zero time for unparseable values.
func timestampKey(value string) time.Time {
	parsed, ok := timeutil.ParseTimestamp(value)
	if !ok {
		return time.Time{}
	}
	return parsed
}
