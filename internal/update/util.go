package update

import (
	"os"
	"strings"

	"simpletodo/internal/i18n"
)

// LangFromEnv resolves the startup language from SIMPLETODO_LANG. Anything
// other than a supported code falls back to English.
func LangFromEnv() i18n.Lang {
	switch strings.ToLower(os.Getenv("SIMPLETODO_LANG")) {
	case "zh":
		return i18n.LangZH
	default:
		return i18n.LangEN
	}
}
