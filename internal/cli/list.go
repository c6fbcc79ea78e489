package cli

import (
	"fmt"
	"log/slog"
)

func (c *CLI) List() error {
	slog.Debug("cli.list started")
	defer slog.Debug("cli.list finished")

	names, err := c.repo.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No scripts found.")
		return nil
	}

	fmt.Println("Available scripts:")
	for _, name := range names {
		fmt.Printf("- %s\n", name)
	}
	return nil
}
