package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	EPH_CONFIG_PATH string

	EPH_LOG_PATH string
)

func init() {
	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("EPH_CONFIG_PATH"); e != "" {
		EPH_CONFIG_PATH = e
	} else {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		EPH_CONFIG_PATH = filepath.Join(configDir, "eph", "config.yaml")
	}

	if e := os.Getenv("EPH_LOG_PATH"); e != "" {
		EPH_LOG_PATH = e
	} else {
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			dataDir = filepath.Join(homeDir, defaultXDGDataDirname)
		}
		EPH_LOG_PATH = filepath.Join(dataDir, "eph", "debug.log")
	}
}
