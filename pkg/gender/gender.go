// Package gender infers grammatical gender from a patronymic.
package gender

import (
	"github.com/arthur-debert/petrovich/pkg/internal/textutil"
	"github.com/arthur-debert/petrovich/pkg/types"
)

// Detect guesses the gender of a person from their middle name (patronymic).
// Names of two letters or fewer, and endings other than -ич/-ыч/-на, yield
// Androgynous.
func Detect(middlename string) types.Gender {
	if textutil.RuneLen(middlename) <= 2 {
		return types.Androgynous
	}

	switch textutil.Lower(textutil.LastRunes(middlename, 2)) {
	case "ич", "ыч":
		return types.Male
	case "на":
		return types.Female
	default:
		return types.Androgynous
	}
}
