package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eph-sh/eph/internal/editor"
	"github.com/eph-sh/eph/internal/script"
)

func (c *CLI) Edit(name string) error {
	slog.Debug("cli.edit started", "script", name)
	defer slog.Debug("cli.edit finished")

	if err := script.ValidateName(name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	if !c.repo.Exists(name) {
		fmt.Fprintln(os.Stderr, "Script does not exist. Use -n to create a new script.")
		return nil
	}

	return c.openInEditor(c.repo.Path(name))
}

// openInEditor opens path in the resolved editor and waits. A non-zero
// editor exit is reported but does not fail the invocation; only a failure
// to spawn the editor does.
func (c *CLI) openInEditor(path string) error {
	ed := editor.Resolve(c.config.Core.Editor)
	status, err := editor.Open(ed, path)
	if err != nil {
		return err
	}
	if status != 0 {
		fmt.Fprintf(os.Stderr, "Editor exited with status: %d\n", status)
	}
	return nil
}
