package rules

import (
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/types"
)

// ModCount is the number of modifier programs every rule carries, one per
// non-nominative case.
const ModCount = 5

// Rule is a single (tags, gender, test, mods) entry of a rule list
type Rule struct {
	// Tags classify where the rule applies. An empty list disables the rule.
	Tags []string `yaml:"tags,omitempty" toml:"tags,omitempty" json:"tags,omitempty"`

	// Gender optionally restricts the rule; empty or unknown means no restriction
	Gender string `yaml:"gender,omitempty" toml:"gender,omitempty" json:"gender,omitempty"`

	// Test lists the candidate endings (or whole words for exceptions)
	Test []string `yaml:"test" toml:"test" json:"test"`

	// Mods are the modifier programs for genitive..prepositional
	Mods []string `yaml:"mods" toml:"mods" json:"mods"`
}

// GenderRestriction returns the gender the rule is limited to. The second
// value is false when the rule declares no gender or one that does not parse.
func (r Rule) GenderRestriction() (types.Gender, bool) {
	if strings.TrimSpace(r.Gender) == "" {
		return "", false
	}
	g, err := types.ParseGender(r.Gender)
	if err != nil {
		return "", false
	}
	return g, true
}

// HasTag reports whether the rule carries tag
func (r Rule) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RuleSet is the pair of ordered rule lists for one name part
type RuleSet struct {
	Exceptions []Rule `yaml:"exceptions,omitempty" toml:"exceptions,omitempty" json:"exceptions,omitempty"`
	Suffixes   []Rule `yaml:"suffixes" toml:"suffixes" json:"suffixes"`
}

// Len returns the total number of rules in both lists
func (s RuleSet) Len() int {
	return len(s.Exceptions) + len(s.Suffixes)
}

// Rules is the complete rule table
type Rules struct {
	Lastname   RuleSet `yaml:"lastname" toml:"lastname" json:"lastname"`
	Firstname  RuleSet `yaml:"firstname" toml:"firstname" json:"firstname"`
	Middlename RuleSet `yaml:"middlename" toml:"middlename" json:"middlename"`

	// Source describes where the table was loaded from
	Source Source `yaml:"-" toml:"-" json:"-"`
}

// Source records the origin of a loaded table
type Source struct {
	// Path is the rules file, or "" for the built-in table
	Path string

	// Format is the decoder that was used (yaml, toml, json)
	Format Format

	// Checksum is the sha256 of the raw document
	Checksum string
}

// IsBuiltin reports whether the table came from the embedded defaults
func (s Source) IsBuiltin() bool {
	return s.Path == ""
}

// Set returns the rule group for a name part
func (r *Rules) Set(kind types.NameKind) (RuleSet, error) {
	switch kind {
	case types.Firstname:
		return r.Firstname, nil
	case types.Lastname:
		return r.Lastname, nil
	case types.Middlename:
		return r.Middlename, nil
	default:
		return RuleSet{}, errors.Newf(errors.ErrInvalidInput, "unknown name kind: %q", kind)
	}
}

// Groups returns the three rule groups keyed by name part, in a fixed order
func (r *Rules) Groups() []Group {
	return []Group{
		{Kind: types.Lastname, Set: r.Lastname},
		{Kind: types.Firstname, Set: r.Firstname},
		{Kind: types.Middlename, Set: r.Middlename},
	}
}

// Group pairs a rule set with the name part it inflects
type Group struct {
	Kind types.NameKind
	Set  RuleSet
}
