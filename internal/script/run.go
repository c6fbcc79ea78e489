package script

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
)

// Exec spawns the named script from the caller's working directory with the
// given arguments and the parent's standard streams, and waits for it to
// finish. The script's exit code is returned; a failure to spawn at all is
// returned as an error. Returns ErrNotFound when the script is not present.
func (r *Repository) Exec(name string, args []string) (int, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}
	if !r.Exists(name) {
		return 0, ErrNotFound
	}

	wd, err := os.Getwd()
	if err != nil {
		return 0, &RepositoryError{Op: "run", Name: name, Err: err}
	}

	cmd := exec.Command(r.Path(name), args...)
	cmd.Dir = wd
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slog.Debug("running script", "script", name, "args", args, "dir", wd)

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		return 0, &RepositoryError{Op: "run", Name: name, Err: err}
	}
	return ee.ExitCode(), nil
}
