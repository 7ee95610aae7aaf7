package commands

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/alem-hub/person-registry/config"
	"github.com/alem-hub/person-registry/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/person-registry/internal/interface/console"
	"github.com/alem-hub/person-registry/pkg/logger"
	"github.com/alem-hub/person-registry/pkg/timeutil"
)

var (
	cfg *config.Config
	log *logger.Logger

	asOf    string
	letter  string
	strict  bool
	isolate bool
)

// Execute builds the command tree and runs it.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "registry",
		Short:         "Console registry of people and students",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("strict") {
				cfg.Run.Strict = strict
			}
			if cmd.Flags().Changed("isolate") {
				cfg.Run.IsolateFailures = isolate
			}

			opts := cfg.LoggerOptions()
			opts.Output = cmd.ErrOrStderr()
			log = logger.New(opts).With(logger.String("app", cfg.App.Name))
			return nil
		},
		RunE: runDemo,
	}

	root.PersistentFlags().StringVar(&asOf, "as-of", "", "date for age calculations, YYYY-MM-DD (default today)")
	root.PersistentFlags().BoolVar(&strict, "strict", false, "exit with non-zero status when any error is reported")
	root.Flags().StringVar(&letter, "letter", "", "letter to count in surnames (skips the prompt)")
	root.Flags().BoolVar(&isolate, "isolate", true, "continue after a record fails to build")

	root.AddCommand(findCmd())
	return root
}

func runDemo(cmd *cobra.Command, args []string) error {
	date, err := parseAsOf()
	if err != nil {
		return err
	}

	var preset rune
	if letter != "" {
		if utf8.RuneCountInString(letter) != 1 {
			return fmt.Errorf("--letter must be exactly one character, got %q", letter)
		}
		preset, _ = utf8.DecodeRuneInString(letter)
	}

	app := console.New(console.Options{
		In:              cmd.InOrStdin(),
		Out:             cmd.OutOrStdout(),
		AsOf:            date,
		Letter:          preset,
		IsolateFailures: cfg.Run.IsolateFailures,
		Log:             log,
	}, memory.NewPersonRepository(), memory.NewStudentRepository())

	if err := app.Run(cmd.Context()); err != nil && cfg.Run.Strict {
		return err
	}
	return nil
}

func parseAsOf() (time.Time, error) {
	if asOf == "" {
		return timeutil.Today(), nil
	}
	return timeutil.ParseDate(asOf)
}

