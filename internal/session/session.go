// Package session owns the in-memory task and history collections for the
// process lifetime. Every mutation runs to completion: update the collection,
// prepend a history record, overwrite the persisted snapshot. A failed save
// is surfaced but the in-memory mutation stands.
package session

import (
	"errors"
	"strings"
	"time"

	"simpletodo/internal/model"
	"simpletodo/internal/storage"
	"simpletodo/internal/views"
)

var (
	ErrEmptyDescription = errors.New("session: task description is empty")
	ErrTaskNotFound     = errors.New("session: task not found")
)

type Session struct {
	Tasks   []model.Task
	History []model.HistoryItem

	// LoadWarning carries a non-fatal problem from the initial load, for the
	// UI to surface once.
	LoadWarning error

	store *storage.Store
	now   func() time.Time
}

// New loads the snapshot and applies the initial ordering: open tasks by due
// date, history newest first. A load failure degrades to empty collections
// with the warning recorded.
func New(store *storage.Store) *Session {
	return newSession(store, time.Now)
}

// NewWithClock is the test constructor; now supplies every timestamp.
func NewWithClock(store *storage.Store, now func() time.Time) *Session {
	return newSession(store, now)
}

func newSession(store *storage.Store, now func() time.Time) *Session {
	tasks, history, err := store.Load()
	views.SortActive(tasks)
	views.SortHistory(history)
	return &Session{
		Tasks:       tasks,
		History:     history,
		LoadWarning: err,
		store:       store,
		now:         now,
	}
}

// Add creates a task and logs it. A description that is empty after trimming
// means the operation is not performed; the sentinel is for the caller to
// swallow, the user never sees an error. The returned error beyond the
// sentinel is a failed save.
func (s *Session) Add(description string, category model.Category, color, dueDate string) (model.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Task{}, ErrEmptyDescription
	}
	now := s.now()
	task := model.New(description, category, color, dueDate, now)
	s.Tasks = append([]model.Task{task}, s.Tasks...)
	s.record(model.ActionAdded, task, now)
	return task, s.persist(now)
}

// Complete marks the task done and logs it.
func (s *Session) Complete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	now := s.now()
	s.Tasks[idx].Complete(now)
	s.record(model.ActionCompleted, s.Tasks[idx], now)
	return s.persist(now)
}

// Uncomplete returns the task to the open state and logs it.
func (s *Session) Uncomplete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	now := s.now()
	s.Tasks[idx].Uncomplete()
	s.record(model.ActionUncompleted, s.Tasks[idx], now)
	return s.persist(now)
}

// Delete removes the task and logs it.
func (s *Session) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	now := s.now()
	task := s.Tasks[idx]
	s.Tasks = append(s.Tasks[:idx], s.Tasks[idx+1:]...)
	s.record(model.ActionDeleted, task, now)
	return s.persist(now)
}

// Find returns the task with the given id.
func (s *Session) Find(id string) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.Tasks[idx], true
}

func (s *Session) indexOf(id string) int {
	for i, task := range s.Tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// record prepends one log entry; the log is most-recent-first and append-only.
func (s *Session) record(action model.Action, task model.Task, now time.Time) {
	item := model.NewHistoryItem(action, task.Description, task.Category, now)
	s.History = append([]model.HistoryItem{item}, s.History...)
}

// persist overwrites the snapshot. On failure the error is returned for the
// UI; the mutation that triggered it is deliberately not rolled back.
func (s *Session) persist(now time.Time) error {
	return s.store.Save(s.Tasks, s.History, now)
}

