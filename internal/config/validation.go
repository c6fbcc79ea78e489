package config

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultScriptDirname = ".eph"

// expandPath expands environment variables and "~" in paths
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}

	path = os.ExpandEnv(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// ScriptDir resolves the script directory: the expanded core.script_dir
// override when set, otherwise ~/.eph.
func (c Config) ScriptDir() (string, error) {
	if dir := c.Core.ScriptDir; dir != "" {
		return expandPath(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultScriptDirname), nil
}
