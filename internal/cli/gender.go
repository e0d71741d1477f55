package cli

import (
	"github.com/arthur-debert/petrovich/pkg/gender"
	"github.com/arthur-debert/petrovich/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newGenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gender PATRONYMIC...",
		Short:   MsgGenderShort,
		Long:    MsgGenderLong,
		Example: "  petrovich gender Иванович Сергеевна",
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := &display.GenderReport{}
			for _, name := range args {
				report.Guesses = append(report.Guesses, display.GenderGuess{
					Name:   name,
					Gender: gender.Detect(name).String(),
				})
			}

			return render(cmd, report)
		},
	}
}
