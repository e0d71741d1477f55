package types

import (
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
)

// Gender is the grammatical gender a name is inflected for
type Gender string

const (
	// Androgynous is the unknown/either gender. It is also the restriction
	// value used by gender-neutral rules.
	Androgynous Gender = "androgynous"

	// Male gender
	Male Gender = "male"

	// Female gender
	Female Gender = "female"
)

// String returns the gender name as it appears in rule data
func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether g is one of the three known genders
func (g Gender) IsValid() bool {
	switch g {
	case Androgynous, Male, Female:
		return true
	}
	return false
}

// ParseGender converts user or rule text into a Gender. The empty string
// means "not declared" and maps to Androgynous.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "androgynous", "any":
		return Androgynous, nil
	case "m", "male", "муж", "мужской":
		return Male, nil
	case "f", "female", "жен", "женский":
		return Female, nil
	default:
		return Androgynous, errors.Newf(errors.ErrInvalidGender, "unknown gender: %q", s)
	}
}
