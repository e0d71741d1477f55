package cli

import (
	"github.com/arthur-debert/petrovich/pkg/config"
	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/logging"
	"github.com/arthur-debert/petrovich/pkg/petrovich"
	"github.com/arthur-debert/petrovich/pkg/types"
	"github.com/arthur-debert/petrovich/pkg/ui/display"
	"github.com/spf13/cobra"
)

type inflectOptions struct {
	last   string
	first  string
	middle string
	gender string
	cases  string
}

// fullName combines the name flags with positional arguments given in
// "Last First Middle" order. Flags win over arguments.
func (o *inflectOptions) fullName(args []string) (petrovich.FullName, error) {
	if len(args) > 3 {
		return petrovich.FullName{}, errors.Newf(errors.ErrInvalidInput, MsgErrTooManyNames, len(args))
	}

	positional := make([]string, 3)
	copy(positional, args)

	name := petrovich.FullName{
		Last:   firstNonEmpty(o.last, positional[0]),
		First:  firstNonEmpty(o.first, positional[1]),
		Middle: firstNonEmpty(o.middle, positional[2]),
	}
	if name == (petrovich.FullName{}) {
		return name, errors.New(errors.ErrInvalidInput, MsgErrNoName)
	}
	return name, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newInflectCmd() *cobra.Command {
	opts := &inflectOptions{}

	cmd := &cobra.Command{
		Use:     "inflect [last [first [middle]]]",
		Short:   MsgInflectShort,
		Long:    MsgInflectLong,
		Example: MsgInflectExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.inflect")
			cfg := config.Get()

			name, err := opts.fullName(args)
			if err != nil {
				return err
			}

			genderText := cfg.Defaults.Gender
			if cmd.Flags().Changed("gender") {
				genderText = opts.gender
			}
			g, err := types.ParseGender(genderText)
			if err != nil {
				return err
			}

			caseText := cfg.Defaults.Case
			if cmd.Flags().Changed("case") {
				caseText = opts.cases
			}
			cases, err := config.ParseCases(caseText)
			if err != nil {
				return err
			}

			p, err := petrovich.New(g, petrovich.WithRulesPath(cfg.Rules.Path))
			if err != nil {
				return err
			}

			done := logging.LogOperationStart(logger, "inflect")
			forms := make(map[types.Case]petrovich.FullName, len(cases))
			for _, c := range cases {
				form, err := p.InflectFullName(name, c)
				if err != nil {
					return err
				}
				forms[c] = form
			}
			done()

			return render(cmd, display.NewDeclension(p.Gender(), cases, forms))
		},
	}

	cmd.Flags().StringVarP(&opts.last, "last", "l", "", MsgFlagLast)
	cmd.Flags().StringVarP(&opts.first, "first", "f", "", MsgFlagFirst)
	cmd.Flags().StringVarP(&opts.middle, "middle", "m", "", MsgFlagMiddle)
	cmd.Flags().StringVarP(&opts.gender, "gender", "g", "", MsgFlagGender)
	cmd.Flags().StringVarP(&opts.cases, "case", "c", "", MsgFlagCase)

	_ = cmd.RegisterFlagCompletionFunc("gender", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(types.Male), string(types.Female), string(types.Androgynous)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("case", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		completions := []string{config.CaseAll}
		for _, c := range types.AllCases() {
			completions = append(completions, c.String())
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
