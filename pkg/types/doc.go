// Package types defines the grammatical vocabulary shared by every part of
// petrovich: the Gender and Case enumerations and the NameKind used to pick a
// rule group for a first, last or middle name.
package types
