package config

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "VTS_CONFIG"

// ResolvePath picks the config file location: the explicit path if
// given (usually the --config-file flag), else $VTS_CONFIG, else
// ~/.vts/config.json.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return expandHome(explicit)
	}
	if fromEnv := expandHome(strings.TrimSpace(os.Getenv(EnvConfigPath))); fromEnv != "" {
		return fromEnv
	}
	return filepath.Join(defaultHome(), "config.json")
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".vts"
	}
	return filepath.Join(home, ".vts")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
