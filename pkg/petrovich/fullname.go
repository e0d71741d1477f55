package petrovich

import (
	"strings"

	"github.com/arthur-debert/petrovich/pkg/types"
)

// FullName is a person's name split into its three parts. Empty parts are
// left empty.
type FullName struct {
	Last   string `json:"last,omitempty"`
	First  string `json:"first,omitempty"`
	Middle string `json:"middle,omitempty"`
}

// String joins the non-empty parts in "Last First Middle" order
func (n FullName) String() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{n.Last, n.First, n.Middle} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// InflectFullName inflects every non-empty part of name. The patronymic is
// handled first so that its gender applies to the other two parts.
func (p *Petrovich) InflectFullName(name FullName, c types.Case) (FullName, error) {
	var (
		out FullName
		err error
	)

	if name.Middle != "" {
		if out.Middle, err = p.Middlename(name.Middle, c); err != nil {
			return FullName{}, err
		}
	}
	if name.Last != "" {
		if out.Last, err = p.Lastname(name.Last, c); err != nil {
			return FullName{}, err
		}
	}
	if name.First != "" {
		if out.First, err = p.Firstname(name.First, c); err != nil {
			return FullName{}, err
		}
	}

	return out, nil
}

// Declension is a name part in every case, indexed by types.Case
type Declension [6]string

// Get returns the form for c, or "" for an invalid case
func (d Declension) Get(c types.Case) string {
	if !c.IsValid() {
		return ""
	}
	return d[c]
}

// Decline inflects one name part into all six cases
func (p *Petrovich) Decline(kind types.NameKind, name string) (Declension, error) {
	var d Declension
	for _, c := range types.AllCases() {
		form, err := p.Inflect(kind, name, c)
		if err != nil {
			return Declension{}, err
		}
		d[c] = form
	}
	return d, nil
}

// DeclineFullName inflects every part of name into all six cases
func (p *Petrovich) DeclineFullName(name FullName) ([6]FullName, error) {
	var table [6]FullName
	for _, c := range types.AllCases() {
		form, err := p.InflectFullName(name, c)
		if err != nil {
			return table, err
		}
		table[c] = form
	}
	return table, nil
}
