package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/eph-sh/eph/internal/env"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs writes the tool's own log file to w. In live mode it seeks to the
// end first and follows new entries; following stops being requested when
// stdout is not a terminal so piped output terminates.
func Logs(w io.Writer, live bool) error {
	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	tailConfig := tail.Config{
		ReOpen: shouldFollow,
		Follow: shouldFollow,
		Poll:   true,
		Logger: tail.DiscardingLogger,
	}
	if live {
		tailConfig.Location = &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		}
	}
	t, err := tail.TailFile(env.EPH_LOG_PATH, tailConfig)
	if err != nil {
		return err
	}
	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}
	return nil
}
