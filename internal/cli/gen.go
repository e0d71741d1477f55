package cli

import (
	"io"

	"github.com/arthur-debert/petrovich/internal/version"
	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s (supported: bash, zsh, fish, powershell)", shell)
	}
}

// ManHeader returns the man page header
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "PETROVICH",
		Section: "1",
		Source:  "petrovich " + version.Version,
		Manual:  "petrovich manual",
	}
}
