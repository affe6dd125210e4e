package easypath

import (
	"io/fs"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/jmgilman/go/easypath/errors"
)

// envPrefix is the prefix of every environment variable LoadConfig reads.
const envPrefix = "EASYPATH"

// Config holds the defaults operations fall back to when a call does not
// override them.
type Config struct {
	// FilePerm is the mode given to files easypath creates.
	FilePerm fs.FileMode `envconfig:"FILE_PERM" default:"0644"`

	// DirPerm is the mode given to folders easypath creates.
	DirPerm fs.FileMode `envconfig:"DIR_PERM" default:"0755"`

	// Encoding is the text encoding used by ReadText, WriteText and friends.
	// "auto" detects the encoding of files being read.
	Encoding string `envconfig:"ENCODING" default:"utf-8"`

	// JSONIndent is the indentation width used by WriteJSON and WriteYAML.
	JSONIndent int `envconfig:"JSON_INDENT" default:"2"`

	// Confirm gates RemoveFolder behind an interactive prompt.
	Confirm bool `envconfig:"CONFIRM" default:"true"`

	// CommandTimeout bounds each external command, such as icacls on
	// Windows. Zero disables the limit.
	CommandTimeout time.Duration `envconfig:"COMMAND_TIMEOUT" default:"30s"`

	Log LogConfig `envconfig:"LOG"`
}

// LogConfig configures the logger built when no logger is supplied.
type LogConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEVELOPMENT" default:"false"`
}

// DefaultConfig returns the configuration used when the environment sets
// nothing.
func DefaultConfig() Config {
	return Config{
		FilePerm:       0o644,
		DirPerm:        0o755,
		Encoding:       "utf-8",
		JSONIndent:     2,
		Confirm:        true,
		CommandTimeout: 30 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads EASYPATH_* environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidInput, "failed to load configuration")
	}
	return cfg, nil
}

// LoadConfigOrDefault is LoadConfig that falls back to DefaultConfig when the
// environment holds malformed values.
func LoadConfigOrDefault() Config {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
