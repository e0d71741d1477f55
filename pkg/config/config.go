package config

import (
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/types"
)

// CaseAll selects every case in Defaults.Case
const CaseAll = "all"

// Config is the complete petrovich configuration
type Config struct {
	Rules    RulesConfig    `koanf:"rules"`
	Defaults DefaultsConfig `koanf:"defaults"`
	Output   OutputConfig   `koanf:"output"`
	Log      LogConfig      `koanf:"log"`
}

// RulesConfig selects the rule table
type RulesConfig struct {
	// Path to a rules file; empty means the built-in table
	Path string `koanf:"path"`
}

// DefaultsConfig holds the values used when a command is not told otherwise
type DefaultsConfig struct {
	Gender string `koanf:"gender"`
	Case   string `koanf:"case"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format string `koanf:"format"`
}

// LogConfig controls logging
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Gender returns the parsed default gender
func (c *Config) Gender() (types.Gender, error) {
	return types.ParseGender(c.Defaults.Gender)
}

// Cases returns the parsed default cases. "all" expands to every case.
func (c *Config) Cases() ([]types.Case, error) {
	return ParseCases(c.Defaults.Case)
}

// ParseCases parses a single case name or "all"
func ParseCases(s string) ([]types.Case, error) {
	if strings.EqualFold(strings.TrimSpace(s), CaseAll) {
		return types.AllCases(), nil
	}
	c, err := types.ParseCase(s)
	if err != nil {
		return nil, err
	}
	return []types.Case{c}, nil
}

// Validate checks that every enumerated value parses
func (c *Config) Validate() error {
	if _, err := c.Gender(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid defaults.gender").
			WithDetail("value", c.Defaults.Gender)
	}
	if _, err := c.Cases(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid defaults.case").
			WithDetail("value", c.Defaults.Case)
	}
	if !isKnownFormat(c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "invalid output.format: %q", c.Output.Format).
			WithDetail("value", c.Output.Format)
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "invalid log.verbosity: %d", c.Log.Verbosity).
			WithDetail("value", c.Log.Verbosity)
	}
	return nil
}

// OutputFormats lists the accepted output.format values
var OutputFormats = []string{"auto", "term", "terminal", "text", "plain", "json", "xml"}

func isKnownFormat(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return true
	}
	for _, f := range OutputFormats {
		if f == s {
			return true
		}
	}
	return false
}
