// Package matcher selects the rule that applies to a word.
//
// Selection is an ordered linear scan: exceptions first (whole-word
// comparison), then suffixes (ending comparison). Within a list the first
// rule that matches wins. Finding nothing is a normal outcome.
package matcher

import (
	"github.com/arthur-debert/petrovich/pkg/internal/textutil"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/types"
)

// TagFirstWord marks rules that only apply to the first part of a
// hyphenated name
const TagFirstWord = "first_word"

// featureTags are the tags that gate matching: a rule carrying one of them
// matches only while the corresponding feature is active. Any other tag is a
// plain label.
var featureTags = []string{TagFirstWord}

// Features describes the position of a word inside the name being inflected
type Features struct {
	// FirstWord is true for the first segment of a multi-segment
	// (hyphenated) name and false otherwise
	FirstWord bool
}

// Tags returns the active tag set. Only features whose value is true
// contribute a tag; new features must follow the same rule.
func (f Features) Tags() TagSet {
	tags := TagSet{}
	if f.FirstWord {
		tags[TagFirstWord] = struct{}{}
	}
	return tags
}

// TagSet is a set of active tags
type TagSet map[string]struct{}

// Has reports whether tag is active
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// FindRule returns the first applicable rule for word. Exceptions take
// precedence over suffix rules regardless of how specific the suffix is.
func FindRule(word string, set rules.RuleSet, features Features, gender types.Gender) (rules.Rule, bool) {
	tags := features.Tags()

	if rule, ok := find(word, set.Exceptions, true, tags, gender); ok {
		return rule, true
	}
	return find(word, set.Suffixes, false, tags, gender)
}

func find(word string, list []rules.Rule, wholeWord bool, tags TagSet, gender types.Gender) (rules.Rule, bool) {
	for _, rule := range list {
		if Matches(word, rule, wholeWord, tags, gender) {
			return rule, true
		}
	}
	return rules.Rule{}, false
}

// Matches reports whether rule applies to word.
//
// The gender filter is deliberately asymmetric: a female rule requires
// Female, while a male rule only rejects Female, so Androgynous falls through
// to masculine inflection.
func Matches(word string, rule rules.Rule, wholeWord bool, tags TagSet, gender types.Gender) bool {
	if len(rule.Tags) == 0 {
		return false
	}
	for _, tag := range featureTags {
		if rule.HasTag(tag) && !tags.Has(tag) {
			return false
		}
	}

	if restriction, ok := rule.GenderRestriction(); ok {
		if (restriction == types.Male && gender == types.Female) ||
			(restriction == types.Female && gender != types.Female) {
			return false
		}
	}

	word = textutil.Lower(word)
	for _, candidate := range rule.Test {
		if wholeWord {
			if word == candidate {
				return true
			}
			continue
		}
		if textutil.HasRuneSuffix(word, candidate) {
			return true
		}
	}

	return false
}
