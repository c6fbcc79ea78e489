package config

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Core: Core{
			Editor:    "",
			ScriptDir: "",
		},
		Logging: Logging{
			Enabled: true,
			Level:   "debug",
		},
	}
}
