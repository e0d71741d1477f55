// Package display holds the result values commands hand to renderers.
// They are plain data with JSON tags; every renderer understands them.
package display

import (
	"github.com/arthur-debert/petrovich/pkg/petrovich"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/types"
)

// Declension is the output of the inflect command: a name in one or more cases
type Declension struct {
	Gender string `json:"gender"`
	Forms  []Form `json:"forms"`
}

// Form is a full name in one case
type Form struct {
	Case   string `json:"case"`
	Last   string `json:"last,omitempty"`
	First  string `json:"first,omitempty"`
	Middle string `json:"middle,omitempty"`
}

// Columns lists the name parts present in at least one form, in
// last/first/middle order
func (d *Declension) Columns() []types.NameKind {
	var hasLast, hasFirst, hasMiddle bool
	for _, f := range d.Forms {
		hasLast = hasLast || f.Last != ""
		hasFirst = hasFirst || f.First != ""
		hasMiddle = hasMiddle || f.Middle != ""
	}

	var cols []types.NameKind
	if hasLast {
		cols = append(cols, types.Lastname)
	}
	if hasFirst {
		cols = append(cols, types.Firstname)
	}
	if hasMiddle {
		cols = append(cols, types.Middlename)
	}
	return cols
}

// Part returns the name part of kind
func (f Form) Part(kind types.NameKind) string {
	switch kind {
	case types.Lastname:
		return f.Last
	case types.Firstname:
		return f.First
	case types.Middlename:
		return f.Middle
	}
	return ""
}

// NewDeclension builds a Declension from inflected names keyed by case
func NewDeclension(g types.Gender, cases []types.Case, names map[types.Case]petrovich.FullName) *Declension {
	d := &Declension{Gender: g.String()}
	for _, c := range cases {
		n := names[c]
		d.Forms = append(d.Forms, Form{
			Case:   c.String(),
			Last:   n.Last,
			First:  n.First,
			Middle: n.Middle,
		})
	}
	return d
}

// GenderReport is the output of the gender command
type GenderReport struct {
	Guesses []GenderGuess `json:"guesses"`
}

// GenderGuess pairs a patronymic with its detected gender
type GenderGuess struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// RulesSummary describes a loaded rule table
type RulesSummary struct {
	Source   string       `json:"source"`
	Format   string       `json:"format"`
	Checksum string       `json:"checksum"`
	Groups   []RuleGroups `json:"groups"`
}

// RuleGroups counts the rules of one name part
type RuleGroups struct {
	Kind       string `json:"kind"`
	Exceptions int    `json:"exceptions"`
	Suffixes   int    `json:"suffixes"`
}

// BuiltinSource is shown as the source of the embedded rule table
const BuiltinSource = "builtin"

// NewRulesSummary counts the rules of table
func NewRulesSummary(table *rules.Rules) *RulesSummary {
	source := table.Source.Path
	if table.Source.IsBuiltin() {
		source = BuiltinSource
	}

	s := &RulesSummary{
		Source:   source,
		Format:   string(table.Source.Format),
		Checksum: table.Source.Checksum,
	}
	for _, g := range table.Groups() {
		s.Groups = append(s.Groups, RuleGroups{
			Kind:       string(g.Kind),
			Exceptions: len(g.Set.Exceptions),
			Suffixes:   len(g.Set.Suffixes),
		})
	}
	return s
}
