// Package config loads the settings shared by the bitsy command-line tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel  = "BITSY_LOG_LEVEL"
	EnvLogFormat = "BITSY_LOG_FORMAT"
	EnvStrict    = "BITSY_STRICT"

	// DefaultFile is the config file read when none is given explicitly.
	DefaultFile = "bitsy.toml"

	// MinWidth is the narrowest table width that reports can be rendered at.
	MinWidth = 20
)

// LogFormat is the output format of log messages.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

func (lf LogFormat) String() string {
	return string(lf)
}

// ParseLogFormat parses a string found in a config file or environment
// variable into a LogFormat. Case is ignored.
func ParseLogFormat(s string) (LogFormat, error) {
	check := strings.ToLower(s)
	switch check {
	case LogFormatText.String():
		return LogFormatText, nil
	case LogFormatJSON.String():
		return LogFormatJSON, nil
	default:
		return LogFormatText, fmt.Errorf("log format not one of 'text' or 'json': %q", s)
	}
}

// Log holds the settings for logging.
type Log struct {
	// Level is the minimum level of message that is logged, as understood by
	// logrus.
	Level string `toml:"level"`

	// Format is the format of log output, either "text" or "json".
	Format string `toml:"format"`
}

// Output holds the settings for reports written by the tools.
type Output struct {
	// Width is the width in characters that tables are laid out to.
	Width int `toml:"width"`

	// Strict makes any diagnostic found while reading a game a failure instead
	// of a warning.
	Strict bool `toml:"strict"`
}

// Config is the full configuration of a tool.
type Config struct {
	Log    Log    `toml:"log"`
	Output Output `toml:"output"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Log: Log{
			Level:  logrus.InfoLevel.String(),
			Format: LogFormatText.String(),
		},
		Output: Output{
			Width: 80,
		},
	}
}

// Load reads the config file at path over the top of the defaults and then
// applies any overrides from the environment. If path is empty, DefaultFile is
// used, and it is not an error for it to not exist. The returned Config is not
// validated.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	}

	return cfg.FromEnv()
}

// FromEnv returns a new Config identical to cfg but with every value that is
// set in the environment replacing the one in cfg.
func (cfg Config) FromEnv() (Config, error) {
	newCFG := cfg

	if level, ok := os.LookupEnv(EnvLogLevel); ok {
		newCFG.Log.Level = level
	}
	if format, ok := os.LookupEnv(EnvLogFormat); ok {
		newCFG.Log.Format = format
	}
	if strict, ok := os.LookupEnv(EnvStrict); ok {
		val, err := strconv.ParseBool(strict)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not a bool", EnvStrict, strict)
		}
		newCFG.Output.Strict = val
	}

	return newCFG, nil
}

// Validate returns an error if the Config has invalid field values set.
func (cfg Config) Validate() error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := ParseLogFormat(cfg.Log.Format); err != nil {
		return fmt.Errorf("log format: %w", err)
	}
	if cfg.Output.Width < MinWidth {
		return fmt.Errorf("output width: must be at least %d, but is %d", MinWidth, cfg.Output.Width)
	}

	return nil
}
