package cli

import (
	"github.com/arthur-debert/petrovich/pkg/config"
	"github.com/arthur-debert/petrovich/pkg/rules"
	"github.com/arthur-debert/petrovich/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: "  petrovich rules --export yaml > my-rules.yml",
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := rules.Load(config.Get().Rules.Path)
			if err != nil {
				return err
			}

			if export != "" {
				format, err := rules.ParseFormat(export)
				if err != nil {
					return err
				}
				data, err := rules.Marshal(table, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return render(cmd, display.NewRulesSummary(table))
		},
	}

	cmd.Flags().StringVar(&export, "export", "", MsgFlagExport)
	_ = cmd.RegisterFlagCompletionFunc("export", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(rules.FormatYAML), string(rules.FormatTOML), string(rules.FormatJSON)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
