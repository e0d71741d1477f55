package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inflect Russian personal names"
	MsgInflectShort    = "Inflect a name into grammatical cases"
	MsgGenderShort     = "Detect gender from patronymics"
	MsgGenderLong      = "Detect the gender of each patronymic given. Patronymics ending in -ич or -ыч are male, -на female; anything else is androgynous."
	MsgRulesShort      = "Show or export the rule table"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/petrovich/config.toml)"
	MsgFlagRules   = "Rules file (.yml, .yaml, .toml or .json); empty uses the built-in rules"
	MsgFlagFormat  = "Output format: auto, term, text, json or xml"
	MsgFlagLast    = "Last name"
	MsgFlagFirst   = "First name"
	MsgFlagMiddle  = "Patronymic"
	MsgFlagGender  = "Gender: male, female or androgynous"
	MsgFlagCase    = "Case name (nominative, genitive, ... or им, род, ...) or \"all\""
	MsgFlagExport  = "Write the rule table as yaml, toml or json"

	// Error messages
	MsgErrNoName       = "no name given: use --last, --first, --middle or positional arguments"
	MsgErrTooManyNames = "expected at most 3 name parts (last, first, middle), got %d"
	MsgErrNoCommand    = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/inflect-long.txt
	msgInflectLongRaw string
	MsgInflectLong    = strings.TrimSpace(msgInflectLongRaw)

	//go:embed msgs/inflect-example.txt
	msgInflectExampleRaw string
	MsgInflectExample    = strings.TrimRight(msgInflectExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
