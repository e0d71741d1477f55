package rules

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/internal/hashutil"
	"github.com/arthur-debert/petrovich/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/rules.yml
var defaultRules []byte

// Format identifies a rule document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name such as "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown rules format: %q", s)
	}
}

// FormatForPath picks the decoder for a rules file from its extension
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

var (
	defaultOnce  sync.Once
	defaultTable *Rules
	defaultErr   error
)

// Default returns the built-in rule table. It is parsed once and shared.
func Default() (*Rules, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(defaultRules, FormatYAML)
		if defaultErr != nil {
			defaultErr = errors.Wrap(defaultErr, errors.ErrInternal, "built-in rules are invalid")
		}
	})
	return defaultTable, defaultErr
}

// MustDefault is Default for callers that treat a broken build as fatal
func MustDefault() *Rules {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultContent returns the raw built-in rules document
func DefaultContent() []byte {
	return bytes.Clone(defaultRules)
}

// Load reads a rule table from path. An empty path selects the built-in
// table. A path that cannot be read fails with ErrRuleSourceNotFound.
func Load(path string) (*Rules, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS is Load reading through fsys
func LoadFS(fsys afero.Fs, path string) (*Rules, error) {
	logger := logging.GetLogger("rules.loader")

	if path == "" {
		logger.Debug().Msg("No rules path given, using built-in rules")
		return Default()
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSourceNotFound,
			"cannot read rules from %s", path).WithDetail("path", path)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSourceParse,
			"cannot pick a decoder for %s", path).WithDetail("path", path)
	}

	table, err := Parse(data, format)
	if err != nil {
		if pe, ok := err.(*errors.PetrovichError); ok {
			pe.WithDetail("path", path)
		}
		return nil, err
	}
	table.Source.Path = path

	logger.Info().
		Str("path", path).
		Str("format", string(format)).
		Int("lastname", table.Lastname.Len()).
		Int("firstname", table.Firstname.Len()).
		Int("middlename", table.Middlename.Len()).
		Msg("Loaded rules")

	return table, nil
}

// Parse decodes and validates a rule document
func Parse(data []byte, format Format) (*Rules, error) {
	var table Rules
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &table)
	case FormatTOML:
		err = toml.Unmarshal(data, &table)
	case FormatJSON:
		err = json.Unmarshal(data, &table)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown rules format: %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSourceParse, "cannot decode %s rules", format)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	table.Source = Source{
		Format:   format,
		Checksum: hashutil.Checksum(data),
	}
	return &table, nil
}

// Marshal encodes a rule table in the given format
func Marshal(table *Rules, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(table)
	case FormatTOML:
		out, err = toml.Marshal(table)
	case FormatJSON:
		out, err = json.MarshalIndent(table, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown rules format: %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot encode rules as %s", format)
	}
	return out, nil
}
