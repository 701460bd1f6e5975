// Package config resolves the settings document. The file is searched in the
// local config directory first, then the per-user config directory; when
// absent a default is created and written back. Resolution failures degrade
// to defaults with a warning, never a crash.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// SettingsFileName is the settings document looked up on startup.
const SettingsFileName = "todo.toml"

const defaultDataFile = "config/todo_data_simplified.json"

type Settings struct {
	// HistoryFilePath is where the task+history snapshot lives.
	HistoryFilePath string `toml:"history_file_path"`
	// AsPackage marks embedded use; standalone mode owns the page setup.
	AsPackage bool `toml:"as_package"`
}

func Default() Settings {
	return Settings{
		HistoryFilePath: defaultDataFile,
		AsPackage:       false,
	}
}

// Locate searches localDir then userDir for name.
func Locate(name, localDir, userDir string) (string, bool) {
	local := filepath.Join(localDir, name)
	if _, err := os.Stat(local); err == nil {
		return local, true
	}
	user := filepath.Join(userDir, name)
	if _, err := os.Stat(user); err == nil {
		return user, true
	}
	return "", false
}

// Load resolves the settings document. When no file exists, the default is
// created under localDir. After a successful load the normalized settings are
// written back, so hand-edited files get completed with defaults.
func Load(name, localDir, userDir string) (Settings, error) {
	path, found := Locate(name, localDir, userDir)
	if !found {
		path = filepath.Join(localDir, name)
		cfg := Default()
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("config: create default %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.HistoryFilePath) == "" {
		cfg.HistoryFilePath = defaultDataFile
	}
	if err := write(path, cfg); err != nil {
		// Write-back is best effort; the loaded settings still stand.
		return cfg, fmt.Errorf("config: rewrite %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault resolves against ./config and the platform user config dir.
func LoadDefault() (Settings, error) {
	userDir, err := os.UserConfigDir()
	if err != nil {
		userDir = "."
	}
	return Load(SettingsFileName, "config", userDir)
}

// FromEnv applies environment overrides on top of the loaded settings, in the
// same spirit as the rest of the app's SIMPLETODO_* switches.
func FromEnv(base Settings) Settings {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("SIMPLETODO_DATA_FILE")); v != "" {
		cfg.HistoryFilePath = v
	}
	if v, ok := getEnvBool("SIMPLETODO_AS_PACKAGE"); ok {
		cfg.AsPackage = v
	}
	return cfg
}

func write(path string, cfg Settings) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
