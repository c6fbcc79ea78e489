package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eph-sh/eph/internal/script"
)

func (c *CLI) Trash(name string) error {
	slog.Debug("cli.trash started", "script", name)
	defer slog.Debug("cli.trash finished")

	switch err := c.repo.Trash(name); {
	case err == nil:
	case script.IsNotFound(err):
		fmt.Fprintf(os.Stderr, "Script '%s' does not exist.\n", name)
		return nil
	case script.IsInvalidName(err):
		fmt.Fprintln(os.Stderr, err)
		return nil
	default:
		return err
	}

	fmt.Printf("Script '%s' moved to trash.\n", name)
	return nil
}
