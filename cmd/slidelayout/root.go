package main

import (
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/slidelayout/internal/config"
	"github.com/tsawler/slidelayout/internal/logging"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile  string
	verbose  bool
	noColor  bool
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "slidelayout",
		Short: "Extract positioned, styled slide elements from rendered snapshots",
		Long: `slidelayout reads a rendered slide snapshot (a JSON or YAML snapshot file,
or an HTML fixture annotated with data-rect boxes) and writes the slide deck
as JSON: every meaningful element with its slide-relative geometry, resolved
style, inline formatting runs and structured list, table and media records.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	root.AddCommand(newExtractCmd(a), newPreviewCmd(a), newInspectCmd(a))
	return root
}

// setup loads the configuration and builds the run's logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	if a.noColor {
		color.NoColor = true
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	a.logger = logging.WithRun(logger, uuid.NewString())
	return nil
}
