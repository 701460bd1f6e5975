package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"simpletodo/internal/timeutil"
)

var ErrInvalidCategory = errors.New("model: invalid task category")

type Category string

const (
	CategoryDaily   Category = "daily"
	CategoryWeekly  Category = "weekly"
	CategoryMonthly Category = "monthly"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDaily, CategoryWeekly, CategoryMonthly:
		return true
	default:
		return false
	}
}

// DefaultColor is the accent used when a task carries no color of its own.
const DefaultColor = "#007AFF"

// Task is the core task record. Timestamp fields hold wire-format strings
// ("2006-01-02 15:04" / "2006-01-02") rather than time.Time so that malformed
// stored values survive a load and degrade through timeutil at the point of
// use. CompletedAt is non-empty exactly when Completed is true.
type Task struct {
	ID          string `json:"id"`
	Description string `json:"task"`
	Category    string `json:"task_type"`
	Color       string `json:"color,omitempty"`
	CreatedAt   string `json:"created_at"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completed_at,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// New builds a task with a generated id and created_at = now. An empty
// category defaults to daily, an empty color to DefaultColor. dueDate may be
// empty.
func New(description string, category Category, color, dueDate string, now time.Time) Task {
	if category == "" {
		category = CategoryDaily
	}
	if color == "" {
		color = DefaultColor
	}
	return Task{
		ID:          uuid.NewString(),
		Description: description,
		Category:    string(category),
		Color:       color,
		CreatedAt:   timeutil.FormatTimestamp(now),
		Completed:   false,
		DueDate:     dueDate,
	}
}

// Complete marks the task done at now. Completed and CompletedAt always move
// together.
func (t *Task) Complete(now time.Time) {
	t.Completed = true
	t.CompletedAt = timeutil.FormatTimestamp(now)
}

// Uncomplete returns the task to the open state and clears CompletedAt.
func (t *Task) Uncomplete() {
	t.Completed = false
	t.CompletedAt = ""
}

// ApplyDefaults fills the optional fields a stored record may omit. It is the
// one place deserialization defaulting happens; task_type is deliberately
// passed through unvalidated so unrecognized stored values are preserved.
func (t *Task) ApplyDefaults() {
	if t.Color == "" {
		t.Color = DefaultColor
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("model: task description is required")
	}
	if !Category(t.Category).IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if strings.TrimSpace(t.CreatedAt) == "" {
		return errors.New("model: task created_at is required")
	}
	if t.Completed && t.CompletedAt == "" {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != "" {
		return errors.New("model: completed_at must be empty when task is not completed")
	}
	return nil
}
