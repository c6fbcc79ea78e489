// Package editor spawns the user's editor on a script, synchronously and
// with the parent's terminal.
package editor

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
)

const fallbackEditor = "nano"

// Resolve picks the editor command: the configured value when set, then
// $EDITOR, then the built-in fallback.
func Resolve(configured string) string {
	if configured != "" {
		return configured
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return fallbackEditor
}

// Open spawns editor on path with inherited standard streams and waits for
// it to exit. The editor's exit code is returned; a failure to spawn at all
// is returned as an error.
func Open(editor, path string) (int, error) {
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slog.Debug("opening editor", "editor", editor, "path", path)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return 0, err
	}
	return ee.ExitCode(), nil
}
