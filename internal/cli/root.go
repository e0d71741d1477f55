// Package cli implements the petrovich command line interface.
package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/petrovich/internal/version"
	"github.com/arthur-debert/petrovich/pkg/cobrax/topics"
	"github.com/arthur-debert/petrovich/pkg/config"
	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity  int
	configPath string
	rulesPath  string
	format     string
}

// overrides returns the config values set explicitly on the command line
func (o *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	m := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("rules") {
		m["rules.path"] = o.rulesPath
	}
	if flags.Changed("format") {
		m["output.format"] = o.format
	}
	if flags.Changed("verbose") {
		m["log.verbosity"] = o.verbosity
	}
	return m
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "petrovich",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging from the flag first so config loading is logged
			logging.SetupLogger(opts.verbosity)

			cfg, err := config.Load(config.LoadOptions{
				Path:      opts.configPath,
				Overrides: opts.overrides(cmd),
			})
			if err != nil {
				return err
			}
			config.Initialize(cfg)

			if cfg.Log.Verbosity > opts.verbosity {
				logging.SetupLogger(cfg.Log.Verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newInflectCmd())
	rootCmd.AddCommand(newGenderCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Help topics are embedded, so a failure here is a build problem
	helpFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, helpFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

