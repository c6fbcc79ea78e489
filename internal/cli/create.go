package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eph-sh/eph/internal/script"
)

func (c *CLI) Create(name string) error {
	slog.Debug("cli.create started", "script", name)
	defer slog.Debug("cli.create finished")

	switch err := c.repo.Create(name); {
	case err == nil:
	case script.IsExists(err):
		fmt.Fprintln(os.Stderr, "Script already exists. Use -e to edit.")
		return nil
	case script.IsInvalidName(err):
		fmt.Fprintln(os.Stderr, err)
		return nil
	default:
		return err
	}

	return c.openInEditor(c.repo.Path(name))
}
