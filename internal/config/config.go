// Package config loads ottocalc settings from defaults, a TOML file and
// the environment, in that order of precedence (lowest first). Command
// line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPath is the config file read when none is named.
const DefaultPath = "ottocalc.toml"

// Env var names. Each overrides the matching TOML key.
const (
	EnvMaxLength = "OTTOCALC_MAX_LENGTH"
	EnvPrecision = "OTTOCALC_PRECISION"
	EnvLogLevel  = "OTTOCALC_LOG_LEVEL"
	EnvLogFile   = "OTTOCALC_LOG_FILE"
	EnvSound     = "OTTOCALC_SOUND"
)

// Config holds every tunable setting.
type Config struct {
	MaxLength int    `toml:"max_length"`
	Precision int    `toml:"precision"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"` // "stderr" logs to the console
	Sound     bool   `toml:"sound"`
	Theme     Theme  `toml:"theme"`
}

// Theme holds the TUI colors, as lipgloss color strings.
type Theme struct {
	Display  string `toml:"display"`
	Error    string `toml:"error"`
	Digit    string `toml:"digit"`
	Operator string `toml:"operator"`
	Action   string `toml:"action"`
	Equals   string `toml:"equals"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxLength: 30,
		Precision: 12,
		LogLevel:  "normal",
		LogFile:   ".ottocalc-logs/ottocalc.log",
		Theme: Theme{
			Display:  "#e4e4e7",
			Error:    "#fca5a5",
			Digit:    "#3f3f46",
			Operator: "#1e3a8a",
			Action:   "#52525b",
			Equals:   "#166534",
		},
	}
}

// Load reads path (DefaultPath when empty) over the defaults, then a
// .env file, then OTTOCALC_* variables. A missing config file or .env is
// not an error unless path was named explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxLength); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLength, err)
		}
		c.MaxLength = n
	}
	if v, ok := lookup(EnvPrecision); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		c.Precision = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvSound); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = b
	}
	return nil
}

// Validate rejects settings the calculator cannot run with.
func (c Config) Validate() error {
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length must be positive, got %d", c.MaxLength)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", c.Precision)
	}
	return nil
}
