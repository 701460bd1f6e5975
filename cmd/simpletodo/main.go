package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"simpletodo/internal/config"
	"simpletodo/internal/session"
	"simpletodo/internal/storage"
	"simpletodo/internal/update"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "simpletodo: %v (using defaults)\n", err)
	}
	cfg = config.FromEnv(cfg)

	sess := session.New(storage.NewStore(cfg.HistoryFilePath))
	model := update.NewModel(sess, update.LangFromEnv())

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "simpletodo failed: %v\n", err)
		os.Exit(1)
	}
}
