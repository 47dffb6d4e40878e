package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/variants/internal/app"
	"github.com/idilsaglam/variants/internal/logger"
	"github.com/idilsaglam/variants/internal/model"
	"github.com/idilsaglam/variants/internal/store"
	"github.com/idilsaglam/variants/internal/tui"
	"github.com/idilsaglam/variants/internal/ui"
)

// usageError marks failures that exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type rootFlags struct {
	catalog  string
	theme    string
	noColor  bool
	verbose  bool
	logLevel string
	logFile  string
}

// env is what every command runs against, built once flags are parsed.
type env struct {
	catalog model.Catalog
	log     *logger.Logger
	closer  io.Closer
}

func (e *env) controller() *app.Controller { return app.NewController(e.catalog, e.log) }

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	e := &env{}

	cmd := &cobra.Command{
		Use:           "variants",
		Short:         "Filter product variants by size and color and summarize a saved selection",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown subcommand: %s", args[0])}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.closer != nil {
				return e.closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(e.controller(), e.log)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.catalog, "catalog", "", "YAML or JSON catalog replacing the built-in one")
	pf.StringVar(&flags.theme, "theme", "classic", "Color theme: classic, neon or mono")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log to stderr (non-interactive commands)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "Append JSON logs to this file")

	cmd.AddCommand(newTableCmd(e))
	cmd.AddCommand(newSummaryCmd(e))
	cmd.AddCommand(newColorsCmd(e))

	return cmd
}

func (e *env) setup(cmd *cobra.Command, flags *rootFlags) error {
	ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	ui.SetTheme(flags.theme)
	if flags.noColor {
		ui.SetColorForcing(false, true)
	}

	log, err := newLogger(cmd, flags, e)
	if err != nil {
		return usageError{err}
	}
	e.log = log

	e.catalog = model.Seed()
	if flags.catalog != "" {
		c, err := store.Load(flags.catalog)
		if err != nil {
			log.Error(err, "load catalog")
			return err
		}
		e.catalog = c
		log.WithFields(map[string]any{"path": flags.catalog, "variants": c.Len()}).Info("catalog loaded")
	}
	return nil
}

func newLogger(cmd *cobra.Command, flags *rootFlags, e *env) (*logger.Logger, error) {
	switch {
	case flags.logFile != "":
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		e.closer = f
		return logger.New(logger.Options{Level: flags.logLevel, Writer: f})
	case flags.verbose:
		return logger.New(logger.Options{Level: flags.logLevel, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	}
	// the TUI owns the terminal
	return logger.New(logger.Options{Level: flags.logLevel, Writer: io.Discard})
}

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, out, errOut io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		ui.SetOutput(out, errOut)
		ui.Fail(err.Error())
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(errOut, ui.Current().Muted.Render("Hint: run `variants --help` for usage"))
			return 2
		}
		return 1
	}
	return 0
}
