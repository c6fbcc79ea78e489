package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eph-sh/eph/internal/config"
	"github.com/eph-sh/eph/internal/debug"
	"github.com/eph-sh/eph/internal/env"
	"github.com/eph-sh/eph/internal/script"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	List   bool   `short:"l" long:"list" description:"List all scripts"`
	Edit   string `short:"e" long:"edit" value-name:"SCRIPT" description:"Edit an existing script"`
	New    string `short:"n" long:"new" value-name:"SCRIPT" description:"Create a new script"`
	Delete string `short:"d" long:"delete" value-name:"SCRIPT" description:"Move a script to trash"`
	Config string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
	repo    *script.Repository
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [SCRIPT [ARGS...]]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(logger))

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	if !cfg.Logging.Enabled {
		logger.SetOutput(io.Discard)
	} else if lv, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(lv)
	}

	scriptDir, err := cfg.ScriptDir()
	if err != nil {
		return err
	}
	repo, err := script.NewRepository(scriptDir)
	if err != nil {
		return fmt.Errorf("failed to initialize script directory: %w", err)
	}

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
		repo:    repo,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

// newLogger builds the file-backed logger bridged into log/slog. Logging is
// diagnostic only; every user-visible line goes straight to stdout/stderr.
func newLogger() (*log.Logger, error) {
	logDir := filepath.Dir(env.EPH_LOG_PATH)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, err
		}
	}

	var w io.Writer
	if file, err := os.OpenFile(env.EPH_LOG_PATH, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = file
	} else {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.DebugLevel,
	})
	return logger.With("run_id", runID()), nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.Meta.Debug == "live":
		return debug.Logs(os.Stdout, true)

	case c.option.Meta.Debug == "full":
		return debug.Logs(os.Stdout, false)

	case c.option.List:
		return c.List()

	case c.option.Edit != "":
		return c.Edit(c.option.Edit)

	case c.option.New != "":
		return c.Create(c.option.New)

	case c.option.Delete != "":
		return c.Trash(c.option.Delete)

	default:
		if len(args) > 0 {
			return c.Exec(args[0], args[1:])
		}
		fmt.Fprintln(os.Stderr, "No valid command provided. Use --help for usage.")
		return nil
	}
}
