// Package storage persists the full task and history collections as one JSON
// snapshot. Every mutation overwrites the whole document; there is exactly one
// writer, so no locking is involved.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"simpletodo/internal/model"
	"simpletodo/internal/timeutil"
)

// Snapshot is the on-disk document. Human-readable, UTF-8, indented JSON.
type Snapshot struct {
	Tasks       []model.Task        `json:"tasks"`
	History     []model.HistoryItem `json:"history"`
	LastUpdated string              `json:"last_updated"`
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields empty collections and no
// error. A read or parse failure also yields empty collections, with the
// error returned so the caller can surface a warning; it is never fatal.
// Optional fields missing from stored records get their defaults here.
func (s *Store) Load() ([]model.Task, []model.HistoryItem, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, []model.HistoryItem{}, nil
		}
		return []model.Task{}, []model.HistoryItem{}, fmt.Errorf("storage: read %s: %w", s.path, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return []model.Task{}, []model.HistoryItem{}, fmt.Errorf("storage: parse %s: %w", s.path, err)
	}

	tasks := snapshot.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	for i := range tasks {
		tasks[i].ApplyDefaults()
	}
	history := snapshot.History
	if history == nil {
		history = []model.HistoryItem{}
	}
	for i := range history {
		history[i].ApplyDefaults()
	}
	return tasks, history, nil
}

// Save writes the full collections plus a last_updated stamp as one document.
// The parent directory is created if absent and the write goes through a temp
// file plus rename so a failed write never leaves a torn snapshot behind.
func (s *Store) Save(tasks []model.Task, history []model.HistoryItem, now time.Time) error {
	snapshot := Snapshot{
		Tasks:       tasks,
		History:     history,
		LastUpdated: timeutil.FormatTimestamp(now),
	}
	if snapshot.Tasks == nil {
		snapshot.Tasks = []model.Task{}
	}
	if snapshot.History == nil {
		snapshot.History = []model.HistoryItem{}
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: replace %s: %w", s.path, err)
	}
	return nil
}
