package types

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
)

// Case is one of the six Russian grammatical cases
type Case int

const (
	// Nominative is the dictionary form; inflecting to it is the identity
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional
)

var caseNames = [...]string{
	Nominative:    "nominative",
	Genitive:      "genitive",
	Dative:        "dative",
	Accusative:    "accusative",
	Instrumental:  "instrumental",
	Prepositional: "prepositional",
}

// AllCases returns the six cases in declension order
func AllCases() []Case {
	return []Case{Nominative, Genitive, Dative, Accusative, Instrumental, Prepositional}
}

// IsValid reports whether c is one of the six known cases
func (c Case) IsValid() bool {
	return c >= Nominative && c <= Prepositional
}

// String returns the English case name
func (c Case) String() string {
	if !c.IsValid() {
		return "case(" + strconv.Itoa(int(c)) + ")"
	}
	return caseNames[c]
}

// ModIndex returns the position of the case in a rule's mods list
// (genitive is 0, prepositional is 4). Nominative has no entry.
func (c Case) ModIndex() (int, bool) {
	if c <= Nominative || c > Prepositional {
		return 0, false
	}
	return int(c) - 1, true
}

// ParseCase accepts English case names and the usual Russian abbreviations
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nominative", "nom", "им", "именительный":
		return Nominative, nil
	case "genitive", "gen", "род", "родительный":
		return Genitive, nil
	case "dative", "dat", "дат", "дательный":
		return Dative, nil
	case "accusative", "acc", "вин", "винительный":
		return Accusative, nil
	case "instrumental", "ins", "тв", "творительный":
		return Instrumental, nil
	case "prepositional", "pre", "prep", "пр", "предложный":
		return Prepositional, nil
	default:
		return Nominative, errors.Newf(errors.ErrInvalidCase, "unknown grammatical case: %q", s)
	}
}
