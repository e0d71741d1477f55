// Package petrovich inflects Russian personal names (last name, first name and
// patronymic) into the six grammatical cases.
//
// A Petrovich value holds the loaded rule table and the gender used for
// matching. The gender is mutable state: it can be declared with SetGender,
// and Middlename overwrites it with the gender detected from the patronymic,
// so that following Firstname and Lastname calls pick it up:
//
//	p, _ := petrovich.New(types.Androgynous)
//	p.Middlename("Сергеевна", types.Dative) // gender is now Female
//	p.Lastname("Иванова", types.Dative)     // "Ивановой"
//
// A Petrovich is not safe for concurrent use. The rule table it holds is
// read-only and may be shared between instances.
package petrovich

import (
	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/gender"
	"github.com/arthur-debert/petrovich/pkg/inflect"
	"github.com/arthur-debert/petrovich/pkg/logging"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Petrovich inflects names with a fixed rule table and a current gender
type Petrovich struct {
	gender types.Gender
	rules  *rules.Rules
	logger zerolog.Logger
}

// Option configures New
type Option func(*options)

type options struct {
	rulesPath string
	fsys      afero.Fs
	table     *rules.Rules
	logger    *zerolog.Logger
}

// WithRulesPath loads the rule table from a YAML, TOML or JSON file instead
// of the built-in one
func WithRulesPath(path string) Option {
	return func(o *options) {
		o.rulesPath = path
	}
}

// WithFS reads the WithRulesPath file through fsys instead of the OS
func WithFS(fsys afero.Fs) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithRules uses an already loaded rule table
func WithRules(table *rules.Rules) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// New creates a Petrovich for the given gender. An empty gender is treated
// as Androgynous. Loading fails with ErrRuleSourceNotFound when an explicit
// rules path cannot be read.
func New(g types.Gender, opts ...Option) (*Petrovich, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if g == "" {
		g = types.Androgynous
	}
	if !g.IsValid() {
		return nil, errors.Newf(errors.ErrInvalidGender, "unknown gender: %q", string(g))
	}

	logger := logging.GetLogger("petrovich")
	if o.logger != nil {
		logger = *o.logger
	}

	table := o.table
	if table == nil {
		fsys := o.fsys
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		var err error
		table, err = rules.LoadFS(fsys, o.rulesPath)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("gender", g.String()).
		Str("rules", table.Source.Path).
		Bool("builtin", table.Source.IsBuiltin()).
		Msg("Petrovich initialized")

	return &Petrovich{
		gender: g,
		rules:  table,
		logger: logger,
	}, nil
}

// Gender returns the gender currently used for matching
func (p *Petrovich) Gender() types.Gender {
	return p.gender
}

// SetGender declares the gender used by subsequent calls
func (p *Petrovich) SetGender(g types.Gender) error {
	if g == "" {
		g = types.Androgynous
	}
	if !g.IsValid() {
		return errors.Newf(errors.ErrInvalidGender, "unknown gender: %q", string(g))
	}
	p.gender = g
	return nil
}

// Rules returns the loaded rule table
func (p *Petrovich) Rules() *rules.Rules {
	return p.rules
}

// DetectGender guesses a gender from a patronymic. It does not change the
// current gender.
func (p *Petrovich) DetectGender(middlename string) types.Gender {
	return gender.Detect(middlename)
}

// Firstname inflects a first name
func (p *Petrovich) Firstname(name string, c types.Case) (string, error) {
	return p.inflect(types.Firstname, name, c)
}

// Lastname inflects a last name
func (p *Petrovich) Lastname(name string, c types.Case) (string, error) {
	return p.inflect(types.Lastname, name, c)
}

// Middlename inflects a patronymic. A non-empty name first replaces the
// current gender with the one detected from it.
func (p *Petrovich) Middlename(name string, c types.Case) (string, error) {
	if name != "" {
		detected := gender.Detect(name)
		if detected != p.gender {
			p.logger.Debug().
				Str("from", p.gender.String()).
				Str("to", detected.String()).
				Str("middlename", name).
				Msg("Gender updated from patronymic")
		}
		p.gender = detected
	}
	return p.inflect(types.Middlename, name, c)
}

// Inflect dispatches to Firstname, Lastname or Middlename by kind
func (p *Petrovich) Inflect(kind types.NameKind, name string, c types.Case) (string, error) {
	switch kind {
	case types.Firstname:
		return p.Firstname(name, c)
	case types.Lastname:
		return p.Lastname(name, c)
	case types.Middlename:
		return p.Middlename(name, c)
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown name kind: %q", kind)
	}
}

func (p *Petrovich) inflect(kind types.NameKind, name string, c types.Case) (string, error) {
	set, err := p.rules.Set(kind)
	if err != nil {
		return "", err
	}
	return inflect.Inflect(name, c, set, p.gender)
}
