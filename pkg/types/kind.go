package types

import (
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
)

// NameKind selects which rule group a name part is inflected with
type NameKind string

const (
	// Firstname is the given name, e.g. "Анна"
	Firstname NameKind = "firstname"
	// Lastname is the family name; hyphenated forms are split per segment
	Lastname NameKind = "lastname"
	// Middlename is the patronymic, which also drives gender detection
	Middlename NameKind = "middlename"
)

// ParseNameKind accepts the rule group names plus a few common aliases
func ParseNameKind(s string) (NameKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "firstname", "first", "given":
		return Firstname, nil
	case "lastname", "last", "surname", "family":
		return Lastname, nil
	case "middlename", "middle", "patronymic":
		return Middlename, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown name kind: %q", s)
	}
}
