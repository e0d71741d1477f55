// Package inflect inflects a single name part, splitting hyphenated
// compounds and inflecting each segment on its own.
package inflect

import (
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/internal/textutil"
	"github.com/arthur-debert/petrovich/pkg/logging"
	"github.com/arthur-debert/petrovich/pkg/matcher"
	"github.com/arthur-debert/petrovich/pkg/modifier"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/types"
)

// Separator joins the parts of a compound name
const Separator = "-"

// Inflect returns name in case c. Each hyphen-separated segment is matched
// against set independently; the first segment of a compound name carries the
// first_word feature. Segments with no applicable rule are returned as given.
func Inflect(name string, c types.Case, set rules.RuleSet, gender types.Gender) (string, error) {
	if !c.IsValid() {
		return "", errors.Newf(errors.ErrInvalidCase, "unknown grammatical case: %s", c).
			WithDetail("case", int(c))
	}
	if c == types.Nominative {
		return name, nil
	}

	logger := logging.GetLogger("inflect")

	segments := strings.Split(name, Separator)
	for i, segment := range segments {
		features := matcher.Features{FirstWord: i == 0 && len(segments) > 1}
		word := textutil.Normalize(segment)

		rule, ok := matcher.FindRule(word, set, features, gender)
		if !ok {
			logger.Trace().
				Str("segment", segment).
				Str("gender", gender.String()).
				Msg("No rule matched, keeping segment")
			continue
		}

		inflected, err := modifier.Apply(word, c, rule)
		if err != nil {
			return "", err
		}
		logger.Trace().
			Str("segment", segment).
			Strs("test", rule.Test).
			Str("case", c.String()).
			Str("result", inflected).
			Msg("Applied rule")
		segments[i] = inflected
	}

	return strings.Join(segments, Separator), nil
}
