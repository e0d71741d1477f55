package rules

import (
	"github.com/arthur-debert/petrovich/pkg/errors"
)

// Validate checks that every rule carries exactly ModCount modifier
// programs. A short mods list would turn a case lookup into an out of range
// read, so it is reported as a data integrity error instead.
func (r *Rules) Validate() error {
	for _, g := range r.Groups() {
		if err := validateList(g, "exceptions", g.Set.Exceptions); err != nil {
			return err
		}
		if err := validateList(g, "suffixes", g.Set.Suffixes); err != nil {
			return err
		}
	}
	return nil
}

func validateList(g Group, list string, rules []Rule) error {
	for i, rule := range rules {
		if len(rule.Mods) != ModCount {
			return errors.Newf(errors.ErrRuleDataInvalid,
				"rule %s.%s[%d] has %d mods, want %d", g.Kind, list, i, len(rule.Mods), ModCount).
				WithDetail("group", string(g.Kind)).
				WithDetail("list", list).
				WithDetail("index", i)
		}
	}
	return nil
}
