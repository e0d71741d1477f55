package cli

import (
	"fmt"

	"github.com/arthur-debert/petrovich/pkg/config"
	"github.com/arthur-debert/petrovich/pkg/ui"
	"github.com/spf13/cobra"
)

// render writes a display result to the command output in the configured
// format
func render(cmd *cobra.Command, result interface{}) error {
	format, err := ui.ParseFormat(config.Get().Output.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

// PrintError renders err on the command's error stream in the configured
// format
func PrintError(cmd *cobra.Command, err error) {
	format, perr := ui.ParseFormat(config.Get().Output.Format)
	if perr != nil {
		format = ui.FormatAuto
	}

	renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rerr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}
