// Package modifier applies a rule's case modifier program to a word.
//
// A modifier program is a short string read left to right against a working
// copy of the word:
//
//	.  keep the word as it is
//	-  drop the last letter
//	x  append x (any other character)
//
// So "--ого" turns "Толстой" into "Толстого" and "ым" turns "Петров" into
// "Петровым".
package modifier

import (
	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/types"
)

const (
	// Keep is the no-op instruction
	Keep = '.'

	// Drop removes the last character of the working word
	Drop = '-'
)

// Apply inflects word to case c using rule. Nominative returns word as is.
// An unknown case fails with ErrInvalidCase; a rule with no program for the
// case fails with ErrRuleDataInvalid.
func Apply(word string, c types.Case, rule rules.Rule) (string, error) {
	program, err := ProgramFor(c, rule)
	if err != nil {
		return "", err
	}
	return Run(word, program), nil
}

// ProgramFor returns the program rule holds for case c. Nominative has the
// empty program.
func ProgramFor(c types.Case, rule rules.Rule) (string, error) {
	if !c.IsValid() {
		return "", errors.Newf(errors.ErrInvalidCase, "unknown grammatical case: %s", c).
			WithDetail("case", int(c))
	}
	idx, ok := c.ModIndex()
	if !ok {
		return "", nil
	}
	if idx >= len(rule.Mods) {
		return "", errors.Newf(errors.ErrRuleDataInvalid,
			"rule has %d mods, none for %s", len(rule.Mods), c).
			WithDetail("case", c.String()).
			WithDetail("test", rule.Test)
	}
	return rule.Mods[idx], nil
}

// Run interprets program against word
func Run(word, program string) string {
	out := []rune(word)
	for _, ch := range program {
		switch ch {
		case Keep:
		case Drop:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
