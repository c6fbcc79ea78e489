package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eph-sh/eph/internal/script"
)

func (c *CLI) Exec(name string, args []string) error {
	slog.Debug("cli.exec started", "script", name, "args", args)
	defer slog.Debug("cli.exec finished")

	status, err := c.repo.Exec(name, args)
	switch {
	case script.IsNotFound(err):
		fmt.Fprintf(os.Stderr, "Script '%s' does not exist.\n", name)
		return nil
	case script.IsInvalidName(err):
		fmt.Fprintln(os.Stderr, err)
		return nil
	case err != nil:
		return err
	}

	// a failing script is reported, never propagated as our own exit code
	if status != 0 {
		fmt.Fprintf(os.Stderr, "Script exited with status: %d\n", status)
	}
	return nil
}
