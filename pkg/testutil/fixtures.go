package testutil

// SuffixOnlyRulesJSON is a minimal rule table: a single male "ов" lastname
// suffix with a deliberately wrong genitive, so tests can tell it apart
// from the built-in table.
const SuffixOnlyRulesJSON = `{
  "lastname": {"suffixes": [{"gender": "male", "tags": ["*"], "test": ["ов"], "mods": [".", "у", "а", "ым", "е"]}]},
  "firstname": {"suffixes": []},
  "middlename": {"suffixes": []}
}`

// BrokenYAML fails to parse as any rule format
const BrokenYAML = "lastname: [\n"
