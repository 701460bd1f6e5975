// Package duedate decides the due-date status of a task relative to a given
// day. Its contract is the category and the signed day delta; icons, labels
// and urgency styling belong to the rendering layer.
package duedate

import (
	"time"

	"simpletodo/internal/model"
	"simpletodo/internal/timeutil"
)

type Category string

const (
	Completed      Category = "completed"
	NoDueDate      Category = "no_due_date"
	Overdue        Category = "overdue"
	DueToday       Category = "due_today"
	DueSoon        Category = "due_soon"
	DueLater       Category = "due_later"
	InvalidDueDate Category = "invalid_due_date"
)

// dueSoonWindow is the inclusive upper bound, in days, for DueSoon.
const dueSoonWindow = 3

// Status is the classifier output. Days carries the magnitude for Overdue
// (days past) and DueSoon (days remaining). CompletedAt is set only when the
// task's completion timestamp parsed; DueDate only for DueLater; Raw only for
// InvalidDueDate, holding the unparseable stored value.
type Status struct {
	Category    Category
	Days        int
	CompletedAt string
	DueDate     time.Time
	Raw         string
}

// Classify evaluates in strict precedence order: completion wins over any due
// date, a missing due date is distinct from an unparseable one.
func Classify(task model.Task, today time.Time) Status {
	if task.Completed {
		status := Status{Category: Completed}
		if _, ok := timeutil.ParseTimestamp(task.CompletedAt); ok {
			status.CompletedAt = task.CompletedAt
		}
		return status
	}
	if task.DueDate == "" {
		return Status{Category: NoDueDate}
	}
	due, ok := timeutil.ParseDate(task.DueDate)
	if !ok {
		return Status{Category: InvalidDueDate, Raw: task.DueDate}
	}
	daysDiff := timeutil.DaysBetween(today, due)
	switch {
	case daysDiff < 0:
		return Status{Category: Overdue, Days: -daysDiff}
	case daysDiff == 0:
		return Status{Category: DueToday}
	case daysDiff <= dueSoonWindow:
		return Status{Category: DueSoon, Days: daysDiff}
	default:
		return Status{Category: DueLater, DueDate: due}
	}
}
