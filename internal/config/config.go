package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/eph-sh/eph/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

// Config is the resolved, immutable configuration for one invocation.
// It is loaded (or created with defaults) once and passed down explicitly.
type Config struct {
	Core    Core    `yaml:"core"`
	Logging Logging `yaml:"logging"`
}

type Core struct {
	// Editor is the command used to open scripts. Empty falls through
	// to $EDITOR and then to the built-in default.
	Editor string `yaml:"editor"`

	// ScriptDir overrides the script directory. Empty means ~/.eph.
	// "~" and environment variables are expanded.
	ScriptDir string `yaml:"script_dir"`
}

type Logging struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"required,oneof=debug info warn error"`
}

type configError struct {
	configPath string
	configDir  string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't read the %q config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.EPH_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		if _, err := newConfigFile.WriteString(p.getDefaultConfigContents()); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) ensureConfigFile() (string, error) {
	path := env.EPH_CONFIG_PATH

	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			parser:     p,
			configPath: path,
			configDir:  filepath.Dir(path),
			err:        err,
		}
	}

	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (p parser) readConfigFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			configDir:  filepath.Dir(path),
			parser:     p,
			err:        err,
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			return cfg, fmt.Errorf("validation error: field %s, %q is invalid", err.Field(), err.Value())
		}
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return parser{}
}

// Parse loads the config from path, or from the default location when path
// is empty. A missing default config file is created with default contents.
func Parse(path string) (Config, error) {
	parser := initParser()

	var cfg Config
	var err error
	var configPath string

	if path == "" {
		configPath, err = parser.ensureConfigFile()
		if err != nil {
			return cfg, parsingError{err: err}
		}
	} else {
		configPath = path
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err = parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}
