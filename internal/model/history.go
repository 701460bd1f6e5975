package model

import (
	"time"

	"github.com/google/uuid"

	"simpletodo/internal/timeutil"
)

type Action string

// ActionCompleted's wire name differs from the display label "Completed";
// the stored value is kept verbatim for data-file compatibility.
const (
	ActionAdded       Action = "Added"
	ActionCompleted   Action = "Completed_action"
	ActionDeleted     Action = "Deleted"
	ActionUncompleted Action = "Uncompleted"
)

const (
	previewLimit    = 50
	previewEllipsis = "..."
	// UnknownTaskType is recorded when the originating task carried no category.
	UnknownTaskType = "unknown"
)

// HistoryItem is an immutable, append-only log record of one task mutation.
type HistoryItem struct {
	ID              string `json:"id"`
	Action          Action `json:"action"`
	TaskDescription string `json:"task_description"`
	TaskType        string `json:"task_type"`
	Timestamp       string `json:"timestamp"`
}

// NewHistoryItem records a task mutation at now. The description is truncated
// to 50 characters (runes, not bytes) with an ellipsis marker appended when it
// was longer, so the stored preview is never above 53 characters.
func NewHistoryItem(action Action, taskDescription, taskType string, now time.Time) HistoryItem {
	if taskType == "" {
		taskType = UnknownTaskType
	}
	return HistoryItem{
		ID:              uuid.NewString(),
		Action:          action,
		TaskDescription: truncatePreview(taskDescription),
		TaskType:        taskType,
		Timestamp:       timeutil.FormatTimestamp(now),
	}
}

// ApplyDefaults fills optional fields a stored record may omit. Stored id and
// timestamp are kept as-is so the log round-trips losslessly.
func (h *HistoryItem) ApplyDefaults() {
	if h.TaskType == "" {
		h.TaskType = UnknownTaskType
	}
}

func truncatePreview(description string) string {
	runes := []rune(description)
	if len(runes) <= previewLimit {
		return description
	}
	return string(runes[:previewLimit]) + previewEllipsis
}
